package uvc

import (
	"fmt"
	"strings"

	"github.com/kevmo314/uvc-util/pkg/requests"
	"github.com/kevmo314/uvc-util/pkg/uvctype"
)

// Capabilities combines the GET_INFO bitmap (bits 0 to 4) with the limits the
// device reported.
type Capabilities uint32

const (
	SupportsGet    = Capabilities(requests.InfoSupportsGet)
	SupportsSet    = Capabilities(requests.InfoSupportsSet)
	DisabledByAuto = Capabilities(requests.InfoDisabledByAuto)
	AutoUpdate     = Capabilities(requests.InfoAutoUpdate)
	Async          = Capabilities(requests.InfoAsync)

	HasRange    Capabilities = 1 << 8
	HasStepSize Capabilities = 1 << 9
	HasDefault  Capabilities = 1 << 10
)

var capabilityNames = []struct {
	c    Capabilities
	name string
}{
	{SupportsGet, "get"},
	{SupportsSet, "set"},
	{DisabledByAuto, "disabled-by-auto"},
	{AutoUpdate, "auto-update"},
	{Async, "async"},
	{HasRange, "range"},
	{HasStepSize, "step-size"},
	{HasDefault, "default"},
}

func (c Capabilities) Has(flag Capabilities) bool { return c&flag == flag }

func (c Capabilities) String() string {
	var parts []string
	for _, n := range capabilityNames {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Control is one standard control of a device. The current value is a
// single buffer shared by Read, Set and Write, so a Control is not safe for
// concurrent use.
type Control struct {
	dc  *DeviceController
	def *controlDefinition

	caps         Capabilities
	current      *uvctype.Value
	minimum      *uvctype.Value
	maximum      *uvctype.Value
	stepSize     *uvctype.Value
	defaultValue *uvctype.Value
}

func newControl(dc *DeviceController, def *controlDefinition) (*Control, error) {
	c := &Control{dc: dc, def: def, current: uvctype.NewValue(def.typ)}

	info := make([]byte, 1)
	if err := dc.request(requests.RequestCodeGetInfo, def.selector, dc.unitID(def.unit), info); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrControlNotAvailable, def.name, err)
	}
	c.caps = Capabilities(info[0]) & (SupportsGet | SupportsSet | DisabledByAuto | AutoUpdate | Async)
	if !c.caps.Has(SupportsGet) {
		return c, nil
	}

	c.minimum = c.fetch(requests.RequestCodeGetMin)
	c.maximum = c.fetch(requests.RequestCodeGetMax)
	if c.minimum != nil && c.maximum != nil {
		c.caps |= HasRange
	} else {
		c.minimum, c.maximum = nil, nil
	}
	if c.stepSize = c.fetch(requests.RequestCodeGetRes); c.stepSize != nil {
		c.caps |= HasStepSize
	}
	if c.defaultValue = c.fetch(requests.RequestCodeGetDef); c.defaultValue != nil {
		c.caps |= HasDefault
	}
	return c, nil
}

// fetch reads one limit payload and returns it in host order, or nil when the
// device does not answer the request.
func (c *Control) fetch(code requests.RequestCode) *uvctype.Value {
	v := uvctype.NewValue(c.def.typ)
	v.HostToWire()
	if err := c.dc.request(code, c.def.selector, c.dc.unitID(c.def.unit), v.Bytes()); err != nil {
		return nil
	}
	v.WireToHost()
	return v
}

func (c *Control) Name() string                 { return c.def.name }
func (c *Control) Type() *uvctype.Type          { return c.def.typ }
func (c *Control) Unit() Unit                   { return c.def.unit }
func (c *Control) Selector() uint8              { return c.def.selector }
func (c *Control) Capabilities() Capabilities   { return c.caps }
func (c *Control) Minimum() *uvctype.Value      { return c.minimum }
func (c *Control) Maximum() *uvctype.Value      { return c.maximum }
func (c *Control) StepSize() *uvctype.Value     { return c.stepSize }
func (c *Control) DefaultValue() *uvctype.Value { return c.defaultValue }

// Current returns the current value as last read, scanned or written.
func (c *Control) Current() *uvctype.Value { return c.current }

func (c *Control) limits() uvctype.ValueLimits {
	return uvctype.ValueLimits{
		Minimum:  c.minimum,
		Maximum:  c.maximum,
		StepSize: c.stepSize,
		Default:  c.defaultValue,
	}
}

// Read fetches the current value from the device.
func (c *Control) Read() (*uvctype.Value, error) {
	if !c.caps.Has(SupportsGet) {
		return nil, fmt.Errorf("%s: GET_CUR: %w", c.def.name, ErrNotSupported)
	}
	c.current.HostToWire()
	err := c.dc.request(requests.RequestCodeGetCur, c.def.selector, c.dc.unitID(c.def.unit), c.current.Bytes())
	c.current.WireToHost()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.def.name, err)
	}
	return c.current, nil
}

// Write sends the current value to the device.
func (c *Control) Write() error {
	if !c.caps.Has(SupportsSet) {
		return fmt.Errorf("%s: SET_CUR: %w", c.def.name, ErrNotSupported)
	}
	c.current.HostToWire()
	err := c.dc.request(requests.RequestCodeSetCur, c.def.selector, c.dc.unitID(c.def.unit), c.current.Bytes())
	c.current.WireToHost()
	if err != nil {
		return fmt.Errorf("write %s: %w", c.def.name, err)
	}
	return nil
}

// Scan parses text into the current value without writing it. Keywords such
// as "default" resolve against the control's limits.
func (c *Control) Scan(text string, flags uvctype.ScanFlags) error {
	if err := c.current.Scan(text, flags, c.limits()); err != nil {
		return fmt.Errorf("%s: %w", c.def.name, err)
	}
	return nil
}

// Set scans text into the current value and writes it.
func (c *Control) Set(text string, flags uvctype.ScanFlags) error {
	if err := c.Scan(text, flags); err != nil {
		return err
	}
	return c.Write()
}

// ResetToDefault writes the device's default value.
func (c *Control) ResetToDefault() error {
	if c.defaultValue == nil {
		return fmt.Errorf("%s: %w", c.def.name, ErrNoDefault)
	}
	if err := c.current.CopyFrom(c.defaultValue); err != nil {
		return err
	}
	return c.Write()
}

// Summary reads the current value and describes the control, its type and
// its limits.
func (c *Control) Summary() (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s {\n", c.def.name)
	fmt.Fprintf(&sb, "  type-description: {\n    %s\n  },", c.def.typ.Summary())
	if c.minimum != nil && c.maximum != nil {
		fmt.Fprintf(&sb, "\n  minimum: %s", c.minimum)
		fmt.Fprintf(&sb, "\n  maximum: %s", c.maximum)
	}
	if c.stepSize != nil {
		fmt.Fprintf(&sb, "\n  step-size: %s", c.stepSize)
	}
	if c.defaultValue != nil {
		fmt.Fprintf(&sb, "\n  default-value: %s", c.defaultValue)
	}
	if c.caps.Has(SupportsGet) {
		if _, err := c.Read(); err != nil {
			sb.WriteString("\n}")
			return sb.String(), err
		}
	}
	fmt.Fprintf(&sb, "\n  current-value: %s", c.current)
	sb.WriteString("\n}")
	return sb.String(), nil
}
