package uvc

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kevmo314/uvc-util/pkg/descriptors"
	"github.com/kevmo314/uvc-util/pkg/requests"
)

// Transport carries class requests to the device. *usb.DeviceHandle
// satisfies it.
type Transport interface {
	ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error)
	Close() error
}

// Optional capabilities of a Transport, used when present.
type interfaceClaimer interface {
	ClaimInterface(iface uint8) error
	ReleaseInterface(iface uint8) error
}

type kernelDriverDetacher interface {
	KernelDriverActive(iface uint8) (bool, error)
	DetachKernelDriver(iface uint8) error
	AttachKernelDriver(iface uint8) error
}

type Options struct {
	// Timeout applies to every control transfer. Zero means DefaultTimeout.
	Timeout time.Duration
	// DetachKernelDriver detaches uvcvideo from the control interface before
	// claiming it and re-attaches it on Close.
	DetachKernelDriver bool
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// DeviceInfo identifies a UVC device on the bus.
type DeviceInfo struct {
	Path            string
	Name            string
	SerialNumber    string
	VendorID        uint16
	ProductID       uint16
	LocationID      uint32
	InterfaceNumber uint8
}

// DeviceController sends control requests to the video control interface of
// one device. It is safe for concurrent use; requests are serialized.
type DeviceController struct {
	info DeviceInfo
	vc   *descriptors.VideoControl
	opts Options

	// opener reopens the device after Close, nil for controllers built over a
	// caller supplied transport.
	opener func() (Transport, error)

	mu       sync.Mutex
	t        Transport
	claimed  bool
	detached bool
	controls map[string]*Control
}

// NewDeviceController builds a controller over an already open transport.
// vc may be nil, in which case every control in the table is probed with
// GET_INFO and the default unit IDs are used.
func NewDeviceController(t Transport, info DeviceInfo, vc *descriptors.VideoControl, opts Options) *DeviceController {
	d := newDeviceController(info, vc, opts, nil)
	d.t = t
	d.claim()
	return d
}

func newDeviceController(info DeviceInfo, vc *descriptors.VideoControl, opts Options, opener func() (Transport, error)) *DeviceController {
	if info.Name == "" {
		info.Name = unknownDeviceName
	}
	return &DeviceController{
		info:     info,
		vc:       vc,
		opts:     opts,
		opener:   opener,
		controls: make(map[string]*Control),
	}
}

// Open opens the device if it is not open yet. Requests open it on demand, so
// calling Open is only needed to surface errors early.
func (d *DeviceController) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.transport()
	return err
}

func (d *DeviceController) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t != nil
}

// Close releases the interface and closes the transport. Controls obtained
// before Close stay usable if the controller can reopen the device.
func (d *DeviceController) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.t == nil {
		return nil
	}
	d.release()
	err := d.t.Close()
	d.t = nil
	return err
}

// transport returns the open transport, opening it if needed. d.mu is held.
func (d *DeviceController) transport() (Transport, error) {
	if d.t != nil {
		return d.t, nil
	}
	if d.opener == nil {
		return nil, ErrClosed
	}
	t, err := d.opener()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.info.Path, err)
	}
	d.t = t
	d.claim()
	return t, nil
}

func (d *DeviceController) claim() {
	ifnum := d.info.InterfaceNumber
	if kd, ok := d.t.(kernelDriverDetacher); ok && d.opts.DetachKernelDriver {
		if active, err := kd.KernelDriverActive(ifnum); err == nil && active {
			if err := kd.DetachKernelDriver(ifnum); err != nil {
				slog.Warn("uvc: detach kernel driver failed", "device", d.info.Name, "interface", ifnum, "err", err)
			} else {
				d.detached = true
			}
		}
	}
	if c, ok := d.t.(interfaceClaimer); ok {
		if err := c.ClaimInterface(ifnum); err != nil {
			// class requests to the interface usually still work while the
			// kernel driver holds it
			slog.Warn("uvc: claim interface failed", "device", d.info.Name, "interface", ifnum, "err", err)
			return
		}
		d.claimed = true
	}
}

func (d *DeviceController) release() {
	ifnum := d.info.InterfaceNumber
	if c, ok := d.t.(interfaceClaimer); ok && d.claimed {
		if err := c.ReleaseInterface(ifnum); err != nil {
			slog.Warn("uvc: release interface failed", "device", d.info.Name, "interface", ifnum, "err", err)
		}
	}
	d.claimed = false
	if kd, ok := d.t.(kernelDriverDetacher); ok && d.detached {
		if err := kd.AttachKernelDriver(ifnum); err != nil {
			slog.Warn("uvc: attach kernel driver failed", "device", d.info.Name, "interface", ifnum, "err", err)
		}
	}
	d.detached = false
}

// request performs one class request against a unit of the video control
// interface. GET requests must fill data completely.
func (d *DeviceController) request(code requests.RequestCode, selector, unitID uint8, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, err := d.transport()
	if err != nil {
		return err
	}
	n, err := t.ControlTransfer(
		uint8(code.RequestType()),
		uint8(code),
		uint16(selector)<<8, /* wValue: control selector on the high byte */
		uint16(unitID)<<8|uint16(d.info.InterfaceNumber), /* wIndex */
		data,
		d.opts.timeout(),
	)
	if err != nil {
		return fmt.Errorf("%s selector %#04x unit %d: %w", code, selector, unitID, err)
	}
	if code.IsGet() && n < len(data) {
		return fmt.Errorf("%s selector %#04x unit %d: %w: %d of %d bytes", code, selector, unitID, ErrShortTransfer, n, len(data))
	}
	return nil
}

func (d *DeviceController) unitID(u Unit) uint8 {
	switch u {
	case UnitProcessing:
		if d.vc != nil {
			if pu := d.vc.ProcessingUnit(); pu != nil {
				return pu.UnitID
			}
		}
		return defaultProcessingUnitID
	case UnitCameraTerminal:
		if d.vc != nil {
			if ct := d.vc.CameraTerminal(); ct != nil {
				return ct.TerminalID
			}
		}
		return defaultCameraTerminalID
	}
	return 0
}

// advertised reports whether the descriptors list the control. Without a
// descriptor for the unit the answer is left to GET_INFO.
func (d *DeviceController) advertised(def *controlDefinition) bool {
	if d.vc == nil {
		return true
	}
	switch def.unit {
	case UnitProcessing:
		if pu := d.vc.ProcessingUnit(); pu != nil {
			return pu.SupportsControl(def.bit)
		}
	case UnitCameraTerminal:
		if ct := d.vc.CameraTerminal(); ct != nil {
			return ct.SupportsControl(def.bit)
		}
	}
	return true
}

func (d *DeviceController) Name() string         { return d.info.Name }
func (d *DeviceController) SerialNumber() string { return d.info.SerialNumber }
func (d *DeviceController) VendorID() uint16     { return d.info.VendorID }
func (d *DeviceController) ProductID() uint16    { return d.info.ProductID }
func (d *DeviceController) LocationID() uint32   { return d.info.LocationID }
func (d *DeviceController) Path() string         { return d.info.Path }
func (d *DeviceController) InterfaceNumber() uint8 {
	return d.info.InterfaceNumber
}
func (d *DeviceController) Info() DeviceInfo { return d.info }

// VideoControl returns the parsed descriptors, or nil.
func (d *DeviceController) VideoControl() *descriptors.VideoControl { return d.vc }

// UVCVersion returns bcdUVC from the interface header, or zero when unknown.
func (d *DeviceController) UVCVersion() descriptors.BinaryCodedDecimal {
	if d.vc == nil || d.vc.Header == nil {
		return 0
	}
	return d.vc.Header.UVC
}

// ExtensionUnits lists the GUIDs of the extension units of the device.
func (d *DeviceController) ExtensionUnits() []uuid.UUID {
	if d.vc == nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(d.vc.ExtensionUnits))
	for _, xu := range d.vc.ExtensionUnits {
		ids = append(ids, xu.GUIDExtensionCode)
	}
	return ids
}

func (d *DeviceController) Description() string {
	return fmt.Sprintf("%s (0x%04x:0x%04x) Serial Number: %s LocationID: 0x%08x UVC Version: %s",
		d.info.Name, d.info.VendorID, d.info.ProductID, d.info.SerialNumber, d.info.LocationID, d.UVCVersion())
}

func (d *DeviceController) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", d.info.Name),
		slog.String("id", fmt.Sprintf("%04x:%04x", d.info.VendorID, d.info.ProductID)),
		slog.String("location", fmt.Sprintf("0x%08x", d.info.LocationID)),
	)
}

// ControlNames returns the names of every control this package knows, in
// table order, whether or not the device implements them.
func ControlNames() []string {
	names := make([]string, len(controlDefinitions))
	for i := range controlDefinitions {
		names[i] = controlDefinitions[i].name
	}
	return names
}

// Control looks up a control by name, ignoring case. The control's
// capabilities and limits are fetched on first lookup and cached.
func (d *DeviceController) Control(name string) (*Control, error) {
	def := findControlDefinition(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrControlNotFound, name)
	}

	d.mu.Lock()
	c, ok := d.controls[def.name]
	d.mu.Unlock()
	if ok {
		return c, nil
	}

	if !d.advertised(def) {
		return nil, fmt.Errorf("%w: %s", ErrControlNotAvailable, def.name)
	}
	c, err := newControl(d, def)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.controls[def.name]; ok {
		return cached, nil
	}
	d.controls[def.name] = c
	return c, nil
}

// Controls returns every control the device implements, in table order.
func (d *DeviceController) Controls() []*Control {
	var cs []*Control
	for i := range controlDefinitions {
		c, err := d.Control(controlDefinitions[i].name)
		if err != nil {
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

func findControlDefinition(name string) *controlDefinition {
	for i := range controlDefinitions {
		if strings.EqualFold(controlDefinitions[i].name, name) {
			return &controlDefinitions[i]
		}
	}
	return nil
}
