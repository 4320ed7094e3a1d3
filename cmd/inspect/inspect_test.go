package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kevmo314/uvc-util/pkg/descriptors"
)

func TestUnitLines(t *testing.T) {
	assert.Equal(t, []string{"No descriptors"}, unitLines(nil))

	xu := uuid.MustParse("12345678-1234-5678-9abc-def012345678")
	vc := &descriptors.VideoControl{
		Header: &descriptors.HeaderDescriptor{UVC: 0x0110},
		CameraTerminals: []*descriptors.CameraTerminalDescriptor{{
			InputTerminalDescriptor: descriptors.InputTerminalDescriptor{TerminalID: 1},
		}},
		ProcessingUnits: []*descriptors.ProcessingUnitDescriptor{{UnitID: 2}},
		ExtensionUnits:  []*descriptors.ExtensionUnitDescriptor{{UnitID: 3, GUIDExtensionCode: xu}},
	}
	assert.Equal(t, []string{
		"Header (UVC 1.10)",
		"Camera Terminal 1",
		"Processing Unit 2",
		"Extension Unit 3 12345678-1234-5678-9abc-def012345678",
	}, unitLines(vc))
}
