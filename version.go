package uvc

import "fmt"

type releaseStage int

const (
	stageDevelopment releaseStage = iota + 1
	stageAlpha
	stageBeta
	stageFinal
)

const (
	versionMajor       = 1
	versionMinorAndBug = 0x20
	versionStage       = stageBeta
	versionPreRelease  = 0
)

// Version returns the release string, e.g. "1.2.0b0".
func Version() string {
	return formatVersion(versionMajor, versionMinorAndBug, versionStage, versionPreRelease)
}

func formatVersion(major, minorAndBug int, stage releaseStage, preRelease int) string {
	minor, bug := (minorAndBug&0xf0)>>4, minorAndBug&0x0f
	switch stage {
	case stageDevelopment:
		return fmt.Sprintf("%d.%x.%xdev%d", major, minor, bug, preRelease)
	case stageAlpha:
		return fmt.Sprintf("%d.%x.%xa%d", major, minor, bug, preRelease)
	case stageBeta:
		return fmt.Sprintf("%d.%x.%xb%d", major, minor, bug, preRelease)
	case stageFinal:
		if bug == 0 {
			return fmt.Sprintf("%d.%x", major, minor)
		}
	}
	return fmt.Sprintf("%d.%x.%x", major, minor, bug)
}
