//go:build integration

package routes_test

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/rafasilverio93/designar/internal/testutils"
)

func TestMain(m *testing.M) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
