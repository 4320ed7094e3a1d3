package main

import (
	"strconv"
	"strings"

	uvc "github.com/kevmo314/uvc-util"
	"github.com/kevmo314/uvc-util/internal/config"
)

// parseNumber accepts decimal, 0x-prefixed hexadecimal and 0-prefixed octal.
func parseNumber(s string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 0, bits)
}

func (r *runner) selectDevice(kind actionKind, arg string) (*uvc.DeviceController, error) {
	devices, err := r.loadDevices()
	if err != nil {
		return nil, err
	}

	switch kind {
	case actionSelectIndex:
		i, err := parseNumber(arg, 64)
		if err != nil {
			return nil, fail(exitInvalid, err, "Invalid device index '%s'", arg)
		}
		if len(devices) == 0 {
			return nil, fail(exitNoDevice, uvc.ErrNoDevice, "no UVC-capable devices available")
		}
		if i >= uint64(len(devices)) {
			return nil, fail(exitOutOfRange, nil, "Device index %d out of range (0-%d)", i, len(devices)-1)
		}
		return devices[i], nil

	case actionSelectVendorProduct:
		vs, ps, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fail(exitInvalid, nil, "Invalid format for --select-by-vendor-and-product-id, expected vendor:product")
		}
		vendor, err := parseNumber(vs, 16)
		if err != nil {
			return nil, fail(exitInvalid, err, "Invalid vendor ID '%s'", vs)
		}
		product, err := parseNumber(ps, 16)
		if err != nil {
			return nil, fail(exitInvalid, err, "Invalid product ID '%s'", ps)
		}
		for _, d := range devices {
			if d.VendorID() == uint16(vendor) && d.ProductID() == uint16(product) {
				return d, nil
			}
		}
		return nil, fail(exitNoDevice, uvc.ErrNoDevice, "No device found with vendor:product 0x%04x:0x%04x", vendor, product)

	case actionSelectLocation:
		loc, err := parseNumber(arg, 32)
		if err != nil {
			return nil, fail(exitInvalid, err, "Invalid location ID '%s'", arg)
		}
		for _, d := range devices {
			if d.LocationID() == uint32(loc) {
				return d, nil
			}
		}
		return nil, fail(exitNoDevice, uvc.ErrNoDevice, "No device found with location ID 0x%08x", loc)

	case actionSelectName:
		for _, d := range devices {
			if strings.EqualFold(d.Name(), arg) {
				return d, nil
			}
		}
		return nil, fail(exitNoDevice, uvc.ErrNoDevice, "No device found with name '%s'", arg)
	}
	return nil, fail(exitInvalid, nil, "Unrecognized option")
}

// configuredSelection turns the select section of the configuration into a
// selection action.
func configuredSelection(cfg *config.Config) (actionKind, string, bool) {
	switch {
	case cfg.Select.Name != "":
		return actionSelectName, cfg.Select.Name, true
	case cfg.Select.VendorProduct != "":
		return actionSelectVendorProduct, cfg.Select.VendorProduct, true
	case cfg.Select.LocationID != "":
		return actionSelectLocation, cfg.Select.LocationID, true
	case cfg.Select.Index >= 0:
		return actionSelectIndex, strconv.Itoa(cfg.Select.Index), true
	}
	return 0, "", false
}
