// Package segmux drives a multiplexed seven-segment display of up to four digits.
//
// The digits share one set of segment lines and each digit has its own enable
// line. Only one digit is lit at a time; a scan routine moves to the next
// digit every period and persistence of vision shows all of them at once.
//
// # Display Characteristics
//
// - 1 to 4 digits, left or right aligned on the physical positions
// - 8 segment lines (A-G and the decimal point), active low
// - 1 enable line per digit, active low
// - 2ms scan period by default: a 4-digit display refreshes at 125Hz
// - 50 symbols: digits, most letters, dash, point and a few punctuation marks
//
// # Hardware Connection
//
// Wire the segments of a common-anode display through resistors and drive the
// anodes through PNP transistors:
//
//	Display     System Pin
//	A..G, DP    8 GPIO outputs (segment lines)
//	Digit 1     GPIO output (most significant digit, left)
//	Digit 2     GPIO output
//	Digit 3     GPIO output
//	Digit 4     GPIO output (least significant digit, right)
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/gpio"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/segmux"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		var segs [8]gpio.PinOut
//		for i, name := range []string{"GPIO5", "GPIO6", "GPIO13", "GPIO19", "GPIO26", "GPIO21", "GPIO20", "GPIO16"} {
//			segs[i] = gpioreg.ByName(name)
//		}
//		var digits [4]gpio.PinOut
//		for i, name := range []string{"GPIO17", "GPIO27", "GPIO22", "GPIO23"} {
//			digits[i] = gpioreg.ByName(name)
//		}
//
//		// Create device; the scan starts immediately
//		dev, _ := segmux.New(segs, digits, nil)
//		defer dev.Halt()
//
//		dev.PrintInt(-42)
//		time.Sleep(time.Second)
//
//		dev.Print("HELP")
//		dev.SetDP(3, true)
//		time.Sleep(time.Second)
//	}
//
// # Numbers
//
// PrintInt shows values from -999 to 9999 right aligned, without leading
// zeros. The minus sign uses the most significant blank slot:
//
//	PrintInt(-5)    "  -5"
//	PrintInt(-42)   " -42"
//	PrintInt(-999)  "-999"
//	PrintInt(10000) "Err "
//
// The sign is only placed in the thousands slot for magnitudes above 100 and
// in the hundreds slot for magnitudes above 10, so -10 and -100 lose or
// misplace it ("  10" and " 1-0").
//
// # Text
//
// Print writes one character per digit from the left and leaves the slots
// past the end of the string as they were. Uppercase letters use the glyph
// table. Lowercase letters other than 'u' are mapped with the uppercase
// offset and mostly show blank; use uppercase text.
//
// # Concurrency
//
// The scan routine runs on its own goroutine (or wherever an external Trigger
// calls Tick). Every slot write is atomic, but an update touching several
// slots is not: the scan may show a half-updated display for one period.
// The display methods are not safe for concurrent use by multiple goroutines.
//
// Clock().Now() returns milliseconds counted by the scan routine. It disables
// the trigger for the duration of the read and restores its previous state.
//
// # Compatibility with periph.io
//
// Lines are gpio.PinOut values, so any periph.io host driver, the rpiopin
// adapter or the termsim simulator can drive the display.
package segmux
