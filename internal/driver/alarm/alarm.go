// Package alarm decodes the status byte carried at offset 15 of WaterRat and
// Analog uplinks into named alarm conditions.
package alarm

import "strings"

// None is reported when no condition is active.
const None = "None"

// Flag is one named condition and whether the status byte raised it.
type Flag struct {
	Name   string
	Active bool
}

// Set keeps the flags in layout order, most significant bit first.
type Set []Flag

type flagDef struct {
	mask byte
	name string
}

// A condition is active when any bit of its mask is set.
var waterRatFlagDefs = []flagDef{
	{0x80, "Tilt Event"},
	{0x40, "Dropped"},
	{0x20, "Stuck"},
	{0x10, "Heart-beat Message"},
	{0x08, "Retry Message"},
	{0x04, "Commission Message"},
}

var sensorFlagDefs = []flagDef{
	{0xC0, "Threshold Event"},
	{0x20, "Voltage Drop Event"},
	{0x10, "Heart-beat Message"},
	{0x08, "Commission Message"},
	{0x04, "Analog Read Error"},
	{0x02, "Retry Message"},
	{0x01, "Rebooted Event"},
}

// Decode maps a status byte onto the WaterRat layout or, when waterRat is
// false, onto the layout shared by the analog sensor family.
func Decode(status byte, waterRat bool) Set {
	defs := sensorFlagDefs
	if waterRat {
		defs = waterRatFlagDefs
	}
	set := make(Set, 0, len(defs))
	for _, def := range defs {
		set = append(set, Flag{Name: def.name, Active: status&def.mask != 0})
	}
	return set
}

// Active returns the names of raised conditions.
func (s Set) Active() []string {
	var names []string
	for _, f := range s {
		if f.Active {
			names = append(names, f.Name)
		}
	}
	return names
}

// Has reports whether the named condition is raised.
func (s Set) Has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return f.Active
		}
	}
	return false
}

// String joins the raised conditions with ", ", or returns None.
func (s Set) String() string {
	names := s.Active()
	if len(names) == 0 {
		return None
	}
	return strings.Join(names, ", ")
}
