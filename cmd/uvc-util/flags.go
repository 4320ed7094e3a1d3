package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

type actionKind int

const (
	actionHelp actionKind = iota
	actionVersion
	actionKeepRunning
	actionDebug
	actionListDevices
	actionListControls
	actionShowControl
	actionGet
	actionGetValue
	actionSet
	actionResetAll
	actionSelectNone
	actionSelectIndex
	actionSelectVendorProduct
	actionSelectLocation
	actionSelectName
	actionSaveProfile
	actionLoadProfile
)

type action struct {
	kind actionKind
	arg  string
}

// actionValue appends to an action list every time its flag is seen, so the
// actions run in command-line order.
type actionValue struct {
	kind    actionKind
	actions *[]action
	toggle  bool
}

func (v *actionValue) String() string { return "" }

func (v *actionValue) Set(s string) error {
	if v.toggle {
		on, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		if !on {
			return nil
		}
		s = ""
	}
	*v.actions = append(*v.actions, action{kind: v.kind, arg: s})
	return nil
}

func (v *actionValue) Type() string {
	if v.toggle {
		return "bool"
	}
	return "string"
}

type flagSpec struct {
	kind     actionKind
	long     string
	short    string
	takesArg bool
	usage    string
}

var flagSpecs = []flagSpec{
	{actionHelp, "help", "h", false, "show this information"},
	{actionVersion, "version", "v", false, "show the version of the program"},
	{actionKeepRunning, "keep-running", "k", false, "continue processing additional actions despite encountering errors"},
	{actionDebug, "debug", "D", false, "log scan diagnostics and debug messages"},
	{actionListDevices, "list-devices", "d", false, "display a list of all UVC-capable devices"},
	{actionListControls, "list-controls", "c", false, "display the UVC controls implemented by the program or the target device"},
	{actionShowControl, "show-control", "S", true, "display available information for a control, or all controls for \"*\""},
	{actionGet, "get", "g", true, "get the value of a control"},
	{actionGetValue, "get-value", "o", true, "same as --get, but only the value is displayed"},
	{actionSet, "set", "s", true, "set the value of a control, <control-name>=<value>"},
	{actionResetAll, "reset-all", "r", false, "reset all controls with a default value to that value"},
	{actionSelectNone, "select-none", "0", false, "drop the selected target device"},
	{actionSelectIndex, "select-by-index", "I", true, "select the device at this index of the device list (zero-based)"},
	{actionSelectVendorProduct, "select-by-vendor-and-product-id", "V", true, "select by <vendor-id>:<product-id>, hexadecimal or integer"},
	{actionSelectLocation, "select-by-location-id", "L", true, "select by USB location ID, hexadecimal or integer"},
	{actionSelectName, "select-by-name", "N", true, "select by USB product name"},
	{actionSaveProfile, "save-profile", "", true, "write the target's control values to a YAML profile"},
	{actionLoadProfile, "load-profile", "", true, "apply a YAML profile to the target"},
}

type cliArgs struct {
	actions    []action
	configPath string
}

func newFlagSet(args *cliArgs) *pflag.FlagSet {
	fs := pflag.NewFlagSet("uvc-util", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	for _, spec := range flagSpecs {
		v := &actionValue{kind: spec.kind, actions: &args.actions, toggle: !spec.takesArg}
		f := fs.VarPF(v, spec.long, spec.short, spec.usage)
		if !spec.takesArg {
			f.NoOptDefVal = "true"
		}
	}
	fs.StringVar(&args.configPath, "config", "", "read configuration from this YAML file")
	return fs
}

func parseArgs(argv []string) (*cliArgs, error) {
	args := &cliArgs{}
	if err := newFlagSet(args).Parse(argv); err != nil {
		return nil, err
	}
	return args, nil
}

func (a *cliArgs) has(kind actionKind) bool {
	for _, act := range a.actions {
		if act.kind == kind {
			return true
		}
	}
	return false
}

func usage(w io.Writer, exe string) {
	fmt.Fprintf(w, `usage:

    %s {options/actions/target selection}

  Options:

    -h/--help                              Show this information
    -v/--version                           Show the version of the program
    -k/--keep-running                      Continue processing additional actions despite
                                           encountering errors
    -D/--debug                             Show scan diagnostics and debug logging
    --config=<file>                        Read configuration from a YAML file

  Actions:

    -d/--list-devices                      Display a list of all UVC-capable devices
    -c/--list-controls                     Display a list of UVC controls implemented

    Available after a target device is selected:

    -c/--list-controls                     Display a list of UVC controls available for
                                           the target device

    -S (<control-name>|*)                  Display available information for the given
    --show-control=(<control-name>|*)      UVC control (or all controls for "*").

    -g <control-name>                      Get the value of a control.
    --get=<control-name>

    -o <control-name>                      Same as -g/--get, but ONLY the value of the control
    --get-value=<control-name>             is displayed (no label)

    -s <control-name>=<value>              Set the value of a control
    --set=<control-name>=<value>

    -r/--reset-all                         Reset all controls with a default value to that value

    --save-profile=<file>                  Write the values of all read/write controls to a
                                           YAML profile
    --load-profile=<file>                  Apply a YAML profile to the target device

  Methods for selecting the target device:

    -0/--select-none                       Drop the selected target device

    -I <device-index>                      Index of the device in the list of all devices (zero-based)
    --select-by-index=<device-index>

    -V <vendor-id>:<product-id>            Provide the hexadecimal- or integer-valued vendor and product identifier
    --select-by-vendor-and-product-id=<vendor-id>:<product-id>

    -L <location-id>                       Provide the hexadecimal- or integer-valued USB locationID attribute
    --select-by-location-id=<location-id>

    -N <device-name>                       Provide the USB product name
    --select-by-name=<device-name>

`, exe)
}
