//go:build tinygo && baremetal && picocalc

package hal

import (
	"machine"
	"time"

	"github.com/pkg/errors"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

// Key codes reported by the PicoCalc keyboard MCU.
const (
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyF1        byte = 0x81
	picoCalcKeyF2        byte = 0x82
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
	picoCalcKeyRight     byte = 0xB7
)

// FIFO event types.
const (
	picoCalcKeyPressed  byte = 0x01
	picoCalcKeyReleased byte = 0x03
)

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (stock PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to answer right after power-on.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, errors.New("I2C unavailable")
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return KeyEvent{}, false
	}

	switch k.read[0] {
	case picoCalcKeyPressed:
		return picoCalcKeyEvent(k.read[1], true)
	case picoCalcKeyReleased:
		return picoCalcKeyEvent(k.read[1], false)
	default:
		// Held keys repeat nothing here; buttons only care about edges.
		return KeyEvent{}, false
	}
}

func picoCalcKeyEvent(code byte, press bool) (KeyEvent, bool) {
	ev := KeyEvent{Press: press}
	switch code {
	case picoCalcKeyBackspace:
		ev.Code = KeyBackspace
	case picoCalcKeyEsc:
		ev.Code = KeyEscape
	case picoCalcKeyLeft:
		ev.Code = KeyLeft
	case picoCalcKeyRight:
		ev.Code = KeyRight
	case picoCalcKeyUp:
		ev.Code = KeyUp
	case picoCalcKeyDown:
		ev.Code = KeyDown
	case picoCalcKeyF1:
		ev.Code = KeyF1
	case picoCalcKeyF2:
		ev.Code = KeyF2
	case '\r', '\n':
		ev.Code = KeyEnter
	case 0:
		return KeyEvent{}, false
	default:
		if code >= 0x80 {
			return KeyEvent{}, false
		}
		ev.Rune = rune(code)
	}
	return ev, true
}
