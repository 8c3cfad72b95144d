//go:build pwmdrive

package main

import "yamvc/app/voice"

// PWM hardware variant: 8-bit duty value, built with -tags pwmdrive.
func driveEncoder() voice.DriveEncoder {
	return voice.PWMEncoder{}
}
