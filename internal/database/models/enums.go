package models

// Weekday defines the fixed set of weekday names an outing can be scheduled on
type Weekday string

const (
	WeekdayDomingo Weekday = "Domingo"
	WeekdaySegunda Weekday = "Segunda-feira"
	WeekdayTerca   Weekday = "Terça-feira"
	WeekdayQuarta  Weekday = "Quarta-feira"
	WeekdayQuinta  Weekday = "Quinta-feira"
	WeekdaySexta   Weekday = "Sexta-feira"
	WeekdaySabado  Weekday = "Sábado"
)

// IsValid checks if the Weekday is valid
func (w Weekday) IsValid() bool {
	switch w {
	case WeekdayDomingo, WeekdaySegunda, WeekdayTerca, WeekdayQuarta, WeekdayQuinta, WeekdaySexta, WeekdaySabado:
		return true
	}
	return false
}

// Weekdays lists all valid weekday names in calendar order
func Weekdays() []Weekday {
	return []Weekday{
		WeekdayDomingo,
		WeekdaySegunda,
		WeekdayTerca,
		WeekdayQuarta,
		WeekdayQuinta,
		WeekdaySexta,
		WeekdaySabado,
	}
}
