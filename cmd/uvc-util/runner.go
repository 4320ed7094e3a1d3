package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	uvc "github.com/kevmo314/uvc-util"
	"github.com/kevmo314/uvc-util/internal/config"
	"github.com/kevmo314/uvc-util/internal/profile"
	"github.com/kevmo314/uvc-util/pkg/uvctype"
)

// Exit codes, as errno values.
const (
	exitNoEntry    = 2
	exitIO         = 5
	exitNoDevice   = 19
	exitInvalid    = 22
	exitOutOfRange = 34
)

const tableRule = "------------ -------------- ------------ ------------ -------------------- ------------------------------------------------"

// failure is an action error with the exit code it maps to.
type failure struct {
	code  int
	msg   string
	cause error
}

func (f *failure) Error() string { return f.msg }

func (f *failure) Unwrap() error { return f.cause }

func fail(code int, cause error, format string, args ...any) *failure {
	return &failure{code: code, msg: fmt.Sprintf(format, args...), cause: cause}
}

type enumerator func(uvc.Options) ([]*uvc.DeviceController, error)

type runner struct {
	exe       string
	stdout    io.Writer
	stderr    io.Writer
	cfg       *config.Config
	enumerate enumerator

	devices     []*uvc.DeviceController
	enumerated  bool
	target      *uvc.DeviceController
	keepRunning bool
	scanFlags   uvctype.ScanFlags
	rc          int
}

func newRunner(exe string, stdout, stderr io.Writer, cfg *config.Config, enumerate enumerator) *runner {
	return &runner{
		exe:       exe,
		stdout:    stdout,
		stderr:    stderr,
		cfg:       cfg,
		enumerate: enumerate,
		scanFlags: uvctype.ShowWarnings,
	}
}

// run performs the actions in order and returns the exit code. Without
// --keep-running the first failure ends the run.
func (r *runner) run(actions []action) int {
	defer r.close()
	for _, a := range actions {
		err := r.do(a)
		if err == nil {
			continue
		}
		var f *failure
		if !errors.As(err, &f) {
			f = fail(exitIO, err, "%v", err)
		}
		fmt.Fprintf(r.stderr, "ERROR: %s\n", f.msg)
		if f.cause != nil {
			slog.Debug("action failed", "action", a.kind, "arg", a.arg, "err", f.cause)
		}
		r.rc = f.code
		if !r.keepRunning {
			break
		}
	}
	return r.rc
}

func (r *runner) close() {
	for _, d := range r.devices {
		if err := d.Close(); err != nil {
			slog.Warn("close device", "device", d, "err", err)
		}
	}
}

func (r *runner) do(a action) error {
	switch a.kind {
	case actionHelp:
		usage(r.stdout, r.exe)
	case actionVersion:
		fmt.Fprintf(r.stdout, "uvc-util %s\n", uvc.Version())
	case actionKeepRunning:
		r.keepRunning = true
	case actionDebug:
		r.scanFlags |= uvctype.ShowInfo
	case actionListDevices:
		return r.listDevices()
	case actionListControls:
		return r.listControls()
	case actionShowControl:
		return r.showControl(a.arg)
	case actionGet:
		return r.get(a.arg, false)
	case actionGetValue:
		return r.get(a.arg, true)
	case actionSet:
		return r.set(a.arg)
	case actionResetAll:
		return r.resetAll()
	case actionSelectNone:
		r.target = nil
	case actionSelectIndex, actionSelectVendorProduct, actionSelectLocation, actionSelectName:
		d, err := r.selectDevice(a.kind, a.arg)
		if err != nil {
			return err
		}
		r.target = d
		fmt.Fprintf(r.stdout, "Selected device: %s\n", d.Description())
	case actionSaveProfile:
		return r.saveProfile(a.arg)
	case actionLoadProfile:
		return r.loadProfile(a.arg)
	}
	return nil
}

func (r *runner) loadDevices() ([]*uvc.DeviceController, error) {
	if r.enumerated {
		return r.devices, nil
	}
	devices, err := r.enumerate(r.cfg.Options())
	if err != nil {
		return nil, fail(exitNoDevice, err, "could not enumerate USB devices")
	}
	r.devices, r.enumerated = devices, true
	return devices, nil
}

// requireTarget returns the selected device, falling back to the configured
// default and then to the first device.
func (r *runner) requireTarget() (*uvc.DeviceController, error) {
	if r.target != nil {
		return r.target, nil
	}
	devices, err := r.loadDevices()
	if err != nil {
		return nil, err
	}
	if kind, arg, ok := configuredSelection(r.cfg); ok {
		d, err := r.selectDevice(kind, arg)
		if err != nil {
			return nil, err
		}
		r.target = d
		return d, nil
	}
	if len(devices) == 0 {
		return nil, fail(exitNoDevice, uvc.ErrNoDevice, "No UVC device selected")
	}
	r.target = devices[0]
	return r.target, nil
}

func (r *runner) listDevices() error {
	devices, err := r.loadDevices()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return fail(exitNoDevice, uvc.ErrNoDevice, "no UVC-capable devices available")
	}
	fmt.Fprintln(r.stdout, tableRule)
	fmt.Fprintf(r.stdout, "%-12s %-14s %-12s %-12s %-20s %s\n", "Index", "Vend:Prod", "LocationID", "UVC Version", "Serial Number", "Device name")
	fmt.Fprintln(r.stdout, tableRule)
	for i, d := range devices {
		fmt.Fprintf(r.stdout, "%-12d 0x%04x:0x%04x  0x%08x   %-12s %-20s %s\n",
			i, d.VendorID(), d.ProductID(), d.LocationID(), d.UVCVersion(), d.SerialNumber(), d.Name())
	}
	fmt.Fprintln(r.stdout, tableRule)
	return nil
}

func (r *runner) listControls() error {
	if r.target == nil {
		fmt.Fprintln(r.stdout, "UVC controls implemented by this program:")
		for _, name := range uvc.ControlNames() {
			fmt.Fprintf(r.stdout, "  %s\n", name)
		}
		return nil
	}
	controls := r.target.Controls()
	if len(controls) == 0 {
		fmt.Fprintln(r.stderr, "WARNING: no controls implemented by this device")
		return nil
	}
	fmt.Fprintln(r.stdout, "UVC controls implemented by this device:")
	for _, c := range controls {
		fmt.Fprintf(r.stdout, "  %s\n", c.Name())
	}
	return nil
}

func (r *runner) control(name string) (*uvc.Control, error) {
	d, err := r.requireTarget()
	if err != nil {
		return nil, err
	}
	c, err := d.Control(name)
	switch {
	case errors.Is(err, uvc.ErrControlNotFound), errors.Is(err, uvc.ErrControlNotAvailable):
		return nil, fail(exitNoEntry, err, "Control '%s' not found", name)
	case err != nil:
		return nil, fail(exitIO, err, "Could not read control '%s'", name)
	}
	return c, nil
}

func (r *runner) showControl(name string) error {
	d, err := r.requireTarget()
	if err != nil {
		return err
	}
	var controls []*uvc.Control
	if name == "*" {
		controls = d.Controls()
	} else {
		c, err := r.control(name)
		if err != nil {
			return err
		}
		controls = []*uvc.Control{c}
	}
	for _, c := range controls {
		s, err := c.Summary()
		if err != nil {
			return fail(exitIO, err, "Failed to read control '%s'", c.Name())
		}
		fmt.Fprintln(r.stdout, s)
	}
	return nil
}

func (r *runner) get(name string, valueOnly bool) error {
	c, err := r.control(name)
	if err != nil {
		return err
	}
	v, err := c.Read()
	if err != nil {
		return fail(exitIO, err, "Failed to read control '%s'", name)
	}
	if valueOnly {
		fmt.Fprintln(r.stdout, v)
	} else {
		fmt.Fprintf(r.stdout, "%s = %s\n", name, v)
	}
	return nil
}

func (r *runner) set(arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fail(exitInvalid, nil, "Invalid format for --set, expected control=value")
	}
	c, err := r.control(name)
	if err != nil {
		return err
	}
	if err := c.Scan(value, r.scanFlags); err != nil {
		return fail(exitInvalid, err, "Invalid value '%s' for control '%s'", value, name)
	}
	if err := c.Write(); err != nil {
		return fail(exitIO, err, "Failed to write control '%s'", name)
	}
	fmt.Fprintf(r.stdout, "Successfully set %s = %s\n", name, value)
	return nil
}

func (r *runner) resetAll() error {
	d, err := r.requireTarget()
	if err != nil {
		return err
	}
	n := 0
	for _, c := range d.Controls() {
		if !c.Capabilities().Has(uvc.HasDefault) {
			continue
		}
		if err := c.ResetToDefault(); err != nil {
			slog.Warn("reset to default failed", "control", c.Name(), "err", err)
			continue
		}
		fmt.Fprintf(r.stdout, "Reset %s to default\n", c.Name())
		n++
	}
	fmt.Fprintf(r.stdout, "Reset %d controls to default values\n", n)
	return nil
}

func (r *runner) saveProfile(path string) error {
	d, err := r.requireTarget()
	if err != nil {
		return err
	}
	p, err := profile.Capture(d)
	if err != nil {
		return fail(exitIO, err, "Failed to read controls of '%s'", d.Name())
	}
	f, err := os.Create(path)
	if err != nil {
		return fail(exitIO, err, "Could not create profile '%s'", path)
	}
	if err := profile.Write(f, p); err != nil {
		f.Close()
		return fail(exitIO, err, "Could not write profile '%s'", path)
	}
	if err := f.Close(); err != nil {
		return fail(exitIO, err, "Could not write profile '%s'", path)
	}
	fmt.Fprintf(r.stdout, "Saved %d controls to %s\n", len(p.Controls), path)
	return nil
}

func (r *runner) loadProfile(path string) error {
	d, err := r.requireTarget()
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fail(exitNoEntry, err, "Could not open profile '%s'", path)
	}
	defer f.Close()
	p, err := profile.Read(f)
	if err != nil {
		return fail(exitInvalid, err, "Invalid profile '%s'", path)
	}
	n, err := profile.Apply(d, p, r.scanFlags)
	if err != nil {
		return fail(exitIO, err, "Failed to apply profile '%s' after %d controls", path, n)
	}
	fmt.Fprintf(r.stdout, "Applied %d controls from %s\n", n, path)
	return nil
}
