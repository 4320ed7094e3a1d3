// Package profile saves the control values of a device to YAML and restores
// them.
package profile

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	uvc "github.com/kevmo314/uvc-util"
	"github.com/kevmo314/uvc-util/pkg/uvctype"
)

var ErrEmptyName = errors.New("profile entry without a control name")

type Entry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Profile struct {
	Device   string  `yaml:"device"`
	Controls []Entry `yaml:"controls"`
}

// Controller is the part of *uvc.DeviceController a profile needs.
type Controller interface {
	Name() string
	Controls() []*uvc.Control
	Control(name string) (*uvc.Control, error)
}

// Capture reads every control that can be both read and written. Automatic
// mode controls come first so that applying the profile switches them before
// the values they govern.
func Capture(dc Controller) (*Profile, error) {
	p := &Profile{Device: dc.Name()}
	for _, c := range dc.Controls() {
		if !c.Capabilities().Has(uvc.SupportsGet | uvc.SupportsSet) {
			continue
		}
		v, err := c.Read()
		if err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
		p.Controls = append(p.Controls, Entry{Name: c.Name(), Value: v.String()})
	}
	sort.SliceStable(p.Controls, func(i, j int) bool {
		return isAuto(p.Controls[i].Name) && !isAuto(p.Controls[j].Name)
	})
	return p, nil
}

func isAuto(name string) bool { return strings.HasPrefix(name, "auto-") }

// Apply sets each entry in order and returns how many were written. It stops
// at the first failure.
func Apply(dc Controller, p *Profile, flags uvctype.ScanFlags) (int, error) {
	applied := 0
	for _, e := range p.Controls {
		if e.Name == "" {
			return applied, ErrEmptyName
		}
		c, err := dc.Control(e.Name)
		if err != nil {
			return applied, fmt.Errorf("apply: %w", err)
		}
		if err := c.Set(e.Value, flags); err != nil {
			return applied, fmt.Errorf("apply: %w", err)
		}
		applied++
	}
	return applied, nil
}

func Write(w io.Writer, p *Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return enc.Close()
}

func Read(r io.Reader) (*Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	for i, e := range p.Controls {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
	}
	return &p, nil
}
