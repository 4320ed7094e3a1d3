// Command inspect is an interactive browser for the controls of UVC devices.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/pflag"

	uvc "github.com/kevmo314/uvc-util"
	"github.com/kevmo314/uvc-util/internal/config"
	"github.com/kevmo314/uvc-util/pkg/descriptors"
	"github.com/kevmo314/uvc-util/pkg/uvctype"
)

func main() {
	configPath := pflag.String("config", "", "read configuration from this YAML file")
	pflag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(22)
	}

	devices, err := uvc.Enumerate(cfg.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(19)
	}
	defer func() { closeAll(devices) }()

	app := tview.NewApplication()

	deviceList := tview.NewList()
	deviceList.SetBorder(true).SetTitle("Devices")

	units := tview.NewList().ShowSecondaryText(false)
	units.SetBorder(true).SetTitle("Units")

	controlList := tview.NewList().ShowSecondaryText(false)
	controlList.SetBorder(true).SetTitle("Controls")

	detail := tview.NewTextView()
	detail.SetBorder(true).SetTitle("Control")

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")

	slog.SetDefault(slog.New(cfg.Handler(logText, true)))

	leftColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(deviceList, 0, 1, true).
		AddItem(units, 0, 1, false)

	secondColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(controlList, 0, 1, false)

	showControl := func(c *uvc.Control) {
		s, err := c.Summary()
		if err != nil {
			slog.Warn("read control", "control", c.Name(), "err", err)
		}
		detail.SetText(s)
	}

	editControl := func(c *uvc.Control) {
		if !c.Capabilities().Has(uvc.SupportsSet) {
			slog.Info("control is read-only", "control", c.Name())
			return
		}
		input := tview.NewInputField().
			SetLabel(fmt.Sprintf("%s = ", c.Name())).
			SetFieldWidth(24)
		input.SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				if err := c.Set(input.GetText(), uvctype.ShowWarnings|uvctype.ShowInfo); err != nil {
					slog.Error("set control", "control", c.Name(), "err", err)
				} else {
					slog.Info("set control", "control", c.Name(), "value", c.Current())
				}
				showControl(c)
			}
			secondColumn.RemoveItem(input)
			app.SetFocus(controlList)
		})
		secondColumn.AddItem(input, 1, 0, false)
		app.SetFocus(input)
	}

	populate := func() {
		deviceList.Clear()
		units.Clear()
		controlList.Clear()
		detail.Clear()
		for _, d := range devices {
			deviceList.AddItem(d.Name(), fmt.Sprintf("0x%04x:0x%04x  UVC %s", d.VendorID(), d.ProductID(), d.UVCVersion()), 0, func() {
				units.Clear()
				for _, line := range unitLines(d.VideoControl()) {
					units.AddItem(line, "", 0, nil)
				}
				controlList.SetChangedFunc(func(_ int, name, _ string, _ rune) {
					if c, err := d.Control(name); err == nil {
						showControl(c)
					}
				})
				controlList.Clear()
				detail.Clear()
				for _, c := range d.Controls() {
					controlList.AddItem(c.Name(), "", 0, func() { editControl(c) })
				}
				if cs := d.Controls(); len(cs) > 0 {
					showControl(cs[0])
				} else {
					slog.Warn("no controls implemented by this device", "device", d)
				}
				app.SetFocus(controlList)
			})
		}
		if len(devices) == 0 {
			slog.Warn("no UVC-capable devices available")
		}
	}
	populate()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = watchHotplug(ctx, usbfsRoot, 500*time.Millisecond, func() {
		app.QueueUpdateDraw(func() {
			rescanned, err := uvc.Enumerate(cfg.Options())
			if err != nil {
				slog.Error("enumerate devices", "err", err)
				return
			}
			closeAll(devices)
			devices = rescanned
			slog.Info("device list changed", "devices", len(devices))
			populate()
			app.SetFocus(deviceList)
		})
	})
	if err != nil {
		slog.Warn("hotplug watcher unavailable", "root", usbfsRoot, "err", err)
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if _, editing := app.GetFocus().(*tview.InputField); editing {
			return event
		}
		switch {
		case event.Key() == tcell.KeyEscape:
			app.SetFocus(deviceList)
			return nil
		case event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		AddItem(leftColumn, 0, 1, true).
		AddItem(secondColumn, 0, 1, false).
		AddItem(detail, 0, 2, false)

	if err := app.SetRoot(tview.NewFlex().SetDirection(tview.FlexRow).AddItem(flex, 0, 1, true).AddItem(logText, 10, 0, false), true).Run(); err != nil {
		panic(err)
	}
}

func closeAll(devices []*uvc.DeviceController) {
	for _, d := range devices {
		if err := d.Close(); err != nil {
			slog.Warn("close device", "device", d, "err", err)
		}
	}
}

// unitLines describes each entity of a video control interface.
func unitLines(vc *descriptors.VideoControl) []string {
	if vc == nil {
		return []string{"No descriptors"}
	}
	var lines []string
	if vc.Header != nil {
		lines = append(lines, fmt.Sprintf("Header (UVC %s)", vc.Header.UVC))
	}
	for _, it := range vc.InputTerminals {
		lines = append(lines, fmt.Sprintf("Input Terminal %d", it.TerminalID))
	}
	for _, ct := range vc.CameraTerminals {
		lines = append(lines, fmt.Sprintf("Camera Terminal %d", ct.TerminalID))
	}
	for _, pu := range vc.ProcessingUnits {
		lines = append(lines, fmt.Sprintf("Processing Unit %d", pu.UnitID))
	}
	for _, xu := range vc.ExtensionUnits {
		lines = append(lines, fmt.Sprintf("Extension Unit %d %s", xu.UnitID, xu.GUIDExtensionCode))
	}
	return lines
}
