package testutils

import (
	"github.com/rafasilverio93/designar/internal/database/models"
)

// TerritoryFactory provides methods to create test Territory data
type TerritoryFactory struct{}

// Create creates a test Territory with default values
func (f *TerritoryFactory) Create() *models.Territory {
	return &models.Territory{
		Nome:             "Quadra 12 - Centro",
		EnderecoNaoBater: "Rua das Flores, 45",
	}
}

// WithNome sets a custom name for the territory
func (f *TerritoryFactory) WithNome(nome string) *models.Territory {
	territory := f.Create()
	territory.Nome = nome
	return territory
}

// OutingFactory provides methods to create test Outing data
type OutingFactory struct{}

// Create creates a test Outing with default values
func (f *OutingFactory) Create() *models.Outing {
	return &models.Outing{
		Nome:      "Grupo da Manhã",
		DiaSemana: models.WeekdayTerca,
	}
}

// WithNome sets a custom name for the outing
func (f *OutingFactory) WithNome(nome string) *models.Outing {
	outing := f.Create()
	outing.Nome = nome
	return outing
}

// WithDiaSemana sets a custom weekday for the outing
func (f *OutingFactory) WithDiaSemana(dia models.Weekday) *models.Outing {
	outing := f.Create()
	outing.DiaSemana = dia
	return outing
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// Create creates a test Assignment referencing the given territory and outing
func (f *AssignmentFactory) Create(territorioID, saidaID uint) *models.Assignment {
	return &models.Assignment{
		TerritorioID:   territorioID,
		SaidaID:        saidaID,
		DataDesignacao: "2024-01-01",
		DataDevolucao:  "2024-01-21",
	}
}

// WithDates sets custom dates for the assignment
func (f *AssignmentFactory) WithDates(territorioID, saidaID uint, dataDesignacao, dataDevolucao string) *models.Assignment {
	assignment := f.Create(territorioID, saidaID)
	assignment.DataDesignacao = dataDesignacao
	assignment.DataDevolucao = dataDevolucao
	return assignment
}

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Territory  *TerritoryFactory
	Outing     *OutingFactory
	Assignment *AssignmentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Territory:  &TerritoryFactory{},
		Outing:     &OutingFactory{},
		Assignment: &AssignmentFactory{},
	}
}
