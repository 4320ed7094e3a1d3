//go:build integration

package uvc

import (
	"log"
	"os"
	"testing"
)

func firstDevice(t *testing.T) *DeviceController {
	devices, err := Enumerate(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) == 0 {
		t.Skip("no UVC device attached")
	}
	t.Cleanup(func() {
		for _, d := range devices {
			d.Close()
		}
	})
	log.Printf("using %s", devices[0].Description())
	return devices[0]
}

func TestAutoExposureMode(t *testing.T) {
	dc := firstDevice(t)

	control, err := dc.Control("auto-exposure-mode")
	if err != nil {
		t.Skip(err)
	}
	if err := control.Set("1", 0); err != nil {
		t.Fatal(err)
	}
	v, err := control.Read()
	if err != nil {
		t.Fatal(err)
	}
	if mode, _ := v.Uint(0); mode != 1 {
		t.Fatalf("TestAutoExposure: expected ae mode 1 (manual), got %d", mode)
	}
}

func TestAutoFocus(t *testing.T) {
	dc := firstDevice(t)

	control, err := dc.Control("auto-focus")
	if err != nil {
		t.Skip(err)
	}
	if err := control.Set("true", 0); err != nil {
		t.Fatal(err)
	}
	v, err := control.Read()
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "true" {
		t.Fatalf("TestAutoFocus: expected true, got %s", v)
	}
}

func TestShowAllControls(t *testing.T) {
	dc := firstDevice(t)

	for _, c := range dc.Controls() {
		s, err := c.Summary()
		if err != nil {
			t.Errorf("%s: %v", c.Name(), err)
			continue
		}
		log.Print(s)
	}
}

func TestOpenFD(t *testing.T) {
	dc := firstDevice(t)
	dc.Close()

	f, err := os.OpenFile(dc.Path(), os.O_RDWR, 0)
	if err != nil {
		t.Skip(err)
	}
	defer f.Close()

	fdc, err := OpenFD(f.Fd(), dc.Info(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer fdc.Close()
	if fdc.InterfaceNumber() != dc.InterfaceNumber() {
		t.Fatalf("TestOpenFD: interface %d, want %d", fdc.InterfaceNumber(), dc.InterfaceNumber())
	}
	if len(fdc.Controls()) != len(dc.Controls()) {
		t.Fatalf("TestOpenFD: control count differs")
	}
}
