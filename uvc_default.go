package uvc

import (
	"errors"
	"fmt"
	"log/slog"

	usb "github.com/kevmo314/go-usb"
	"github.com/kevmo314/uvc-util/pkg/descriptors"
)

// Enumerate lists the USB devices that carry a video control interface. Each
// device is opened briefly to read its descriptors; the returned controllers
// reopen it on their first request.
func Enumerate(opts Options) ([]*DeviceController, error) {
	devices, err := usb.DeviceList()
	if err != nil {
		return nil, fmt.Errorf("list usb devices: %w", err)
	}

	var controllers []*DeviceController
	for _, dev := range devices {
		handle, err := dev.Open()
		if err != nil {
			slog.Debug("uvc: could not open device", "path", dev.Path, "err", err)
			continue
		}
		ifnum, vc, err := probe(handle)
		handle.Close()
		if err != nil {
			if !errors.Is(err, ErrNoControlInterface) {
				slog.Warn("uvc: bad video control descriptors", "path", dev.Path, "err", err)
			}
			continue
		}

		info := DeviceInfo{
			Path:            dev.Path,
			VendorID:        uint16(dev.Descriptor.VendorID),
			ProductID:       uint16(dev.Descriptor.ProductID),
			LocationID:      locationID(dev.Path),
			InterfaceNumber: ifnum,
		}
		if dev.SysfsStrings != nil {
			info.Name = dev.SysfsStrings.Product
			info.SerialNumber = dev.SysfsStrings.Serial
		}
		opener := func() (Transport, error) {
			h, err := dev.Open()
			if err != nil {
				return nil, err
			}
			return h, nil
		}
		controllers = append(controllers, newDeviceController(info, vc, opts, opener))
	}
	return controllers, nil
}

// OpenFD builds a controller on an already open usbfs file descriptor, as
// handed out by Android's UsbDeviceConnection. The descriptors carry no
// strings, so info supplies the identity; its InterfaceNumber is replaced by
// the one found on the device. The controller keeps the handle until Close.
func OpenFD(fd uintptr, info DeviceInfo, opts Options) (*DeviceController, error) {
	handle, err := usb.WrapSysDevice(int(fd))
	if err != nil {
		return nil, fmt.Errorf("wrap fd %d: %w", fd, err)
	}
	ifnum, vc, err := probe(handle)
	if err != nil {
		handle.Close()
		return nil, err
	}
	info.InterfaceNumber = ifnum
	return NewDeviceController(handle, info, vc, opts), nil
}

// probe finds the video control interface of the active configuration and
// parses its class-specific descriptors.
func probe(handle *usb.DeviceHandle) (uint8, *descriptors.VideoControl, error) {
	config, err := handle.GetActiveConfigDescriptor()
	if err != nil {
		return 0, nil, fmt.Errorf("read config descriptor: %w", err)
	}
	for _, iface := range config.Interfaces {
		if len(iface.AltSettings) == 0 {
			continue
		}
		alt := iface.AltSettings[0]
		if descriptors.ClassCode(alt.InterfaceClass) == descriptors.ClassCodeVideo &&
			descriptors.SubclassCode(alt.InterfaceSubClass) == descriptors.SubclassCodeVideoControl {
			vc, err := descriptors.ParseVideoControl(alt.Extra)
			return uint8(alt.InterfaceNumber), vc, err
		}
	}
	return 0, nil, ErrNoControlInterface
}

// locationID packs the bus and device numbers of a usbfs path into the upper
// half of a 32 bit ID, or returns 0 for other paths.
func locationID(path string) uint32 {
	var bus, addr uint32
	if n, _ := fmt.Sscanf(path, "/dev/bus/usb/%d/%d", &bus, &addr); n != 2 {
		return 0
	}
	return (bus&0xff)<<24 | (addr&0xff)<<16
}
