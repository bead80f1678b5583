package grammar

import (
	"github.com/nihei9/lltool/grammar/symbol"
)

type ProductionID int

func (id ProductionID) Int() int {
	return int(id)
}

// Production is the view the analyses need from a rewrite rule. Driver and Body return copies,
// so callers can't modify a production through them.
type Production interface {
	ID() ProductionID
	Driver() []symbol.ID
	Body() []symbol.ID
}

// GeneralProduction rewrites a sequence of symbols. It can express phrase-structure rules such as
// `a B c -> a d c`.
type GeneralProduction struct {
	id     ProductionID
	driver []symbol.ID
	body   []symbol.ID
}

func NewGeneralProduction(id ProductionID, driver []symbol.ID, body []symbol.ID) GeneralProduction {
	return GeneralProduction{
		id:     id,
		driver: copyIDs(driver),
		body:   copyIDs(body),
	}
}

func (p GeneralProduction) ID() ProductionID {
	return p.id
}

func (p GeneralProduction) Driver() []symbol.ID {
	return copyIDs(p.driver)
}

func (p GeneralProduction) Body() []symbol.ID {
	return copyIDs(p.body)
}

// FreeProduction is a context-free production; its driver is a single non-terminal.
type FreeProduction struct {
	id     ProductionID
	driver symbol.ID
	body   []symbol.ID
}

func NewFreeProduction(id ProductionID, driver symbol.ID, body []symbol.ID) FreeProduction {
	return FreeProduction{
		id:     id,
		driver: driver,
		body:   copyIDs(body),
	}
}

func (p FreeProduction) ID() ProductionID {
	return p.id
}

func (p FreeProduction) Driver() []symbol.ID {
	return []symbol.ID{p.driver}
}

func (p FreeProduction) Body() []symbol.ID {
	return copyIDs(p.body)
}

// LHS returns the driver without wrapping it in a sequence.
func (p FreeProduction) LHS() symbol.ID {
	return p.driver
}

func (p FreeProduction) isEmpty() bool {
	return len(p.body) == 0
}

func copyIDs(ids []symbol.ID) []symbol.ID {
	c := make([]symbol.ID, len(ids))
	copy(c, ids)
	return c
}
