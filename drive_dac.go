//go:build !pwmdrive

package main

import "yamvc/app/voice"

// Default hardware variant: 12-bit code to an external DAC.
func driveEncoder() voice.DriveEncoder {
	return voice.DACEncoder{}
}
