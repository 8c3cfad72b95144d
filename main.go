package main

// typedef unsigned char Uint8;
// void OnAudioCallback(void *userdata, Uint8 *stream, int len);
import "C"

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"
	"unsafe"

	"yamvc/app/voice"

	"github.com/veandco/go-sdl2/sdl"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const AUX_POLL_MS = 10

var (
	opt    *VoiceSettings
	rig    *SimRig
	vc     *voice.Voice
	dev    sdl.AudioDeviceID
	logger = slog.Default()

	// Serializes MIDI events and aux polls: each event runs to
	// completion before the next, in arrival order.
	evmu sync.Mutex
)

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

//export OnAudioCallback
func OnAudioCallback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {

	n := int(length)
	hdr := reflect.SliceHeader{Data: uintptr(unsafe.Pointer(stream)), Len: n, Cap: n}
	buf := *(*[]C.Uint8)(unsafe.Pointer(&hdr))

	// Main calculation loop
	for i := 0; i < n; i += 4 {
		sample := rig.Sample()

		sampleHi := C.Uint8(uint16(sample) >> 8)
		sampleLo := C.Uint8(uint16(sample) & 0xFF)
		buf[i] = sampleLo
		buf[i+1] = sampleHi
		buf[i+2] = sampleLo
		buf[i+3] = sampleHi
	}
}

// onMIDIMessage dispatches one decoded MIDI message to the controller.
// Channel is ignored throughout: the voice runs in omni mode. gomidi
// reports running-status NoteOn velocity 0 as NoteEnd, so note-off
// handling needs no special case here.
func onMIDIMessage(msg midi.Message) {
	evmu.Lock()
	defer evmu.Unlock()

	var ch, key, vel uint8
	var rel int16
	var abs uint16

	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		logger.Debug("note on", "key", key, "vel", vel)
		vc.NoteOn(key)
	case msg.GetNoteEnd(&ch, &key):
		logger.Debug("note off", "key", key)
		vc.NoteOff(key)
	case msg.GetPitchBend(&ch, &rel, &abs):
		logger.Debug("pitch bend", "value", rel)
		vc.PitchBend(rel)
	default:
		logger.Debug("unhandled MIDI message", "msg", msg.String())
	}
}

// pickPort returns the first input port whose name contains want, or the
// first port when want is empty.
func pickPort(ins []drivers.In, want string) (drivers.In, error) {
	if len(ins) == 0 {
		return nil, fmt.Errorf("no MIDI input ports available")
	}
	if want == "" {
		return ins[0], nil
	}
	for _, in := range ins {
		if strings.Contains(in.String(), want) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("MIDI input %q not found", want)
}

func main() {
	opt = NewVoiceSettings()
	opt.ParseArgs()

	if opt.Usage == 1 {
		fmt.Println("Usage: yamvc [options]")
		os.Exit(1)
	}

	initLogger(opt.Debug)

	mdrv, err := rtmididrv.New()
	if err != nil {
		logger.Error("opening MIDI driver", "err", err)
		os.Exit(1)
	}
	defer mdrv.Close()

	ins, err := mdrv.Ins()
	if err != nil {
		logger.Error("listing MIDI inputs", "err", err)
		os.Exit(1)
	}

	if opt.List {
		for i, in := range ins {
			fmt.Printf("%d: %s\n", i, in.String())
		}
		return
	}

	rig = NewSimRig(uint32(opt.Samplefreq))
	vc = voice.NewVoice(rig, driveEncoder())
	vc.SeedNoise(uint32(opt.Seed))
	rig.AttachVoice(vc)

	in, err := pickPort(ins, opt.Port)
	if err != nil {
		logger.Error("selecting MIDI input", "err", err)
		os.Exit(1)
	}
	if err := in.Open(); err != nil {
		logger.Error("opening MIDI input", "port", in.String(), "err", err)
		os.Exit(1)
	}
	logger.Info("listening", "port", in.String())

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		onMIDIMessage(msg)
	}, midi.HandleError(func(listenErr error) {
		logger.Warn("MIDI listener error", "err", listenErr)
	}))
	if err != nil {
		logger.Error("starting MIDI listener", "err", err)
		os.Exit(1)
	}
	defer stop()

	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		logger.Error("initializing SDL audio", "err", err)
		return
	}
	defer sdl.Quit()

	spec := &sdl.AudioSpec{}
	spec.Callback = sdl.AudioCallback(C.OnAudioCallback)
	spec.Samples = 1024
	spec.Channels = 2
	spec.Freq = int32(opt.Samplefreq)
	spec.Format = sdl.AUDIO_S16SYS

	if dev, err = sdl.OpenAudioDevice("", false, spec, nil, 0); err != nil {
		logger.Error("opening audio device", "err", err)
		return
	}

	sdl.PauseAudioDevice(dev, false)
	fmt.Println("Press the Enter Key to stop anytime")

	done := make(chan struct{})
	go func() {
		fmt.Scanln()
		close(done)
	}()

	// Low-priority auxiliary-control poll. The -aux flag stands in for
	// the hardware sampler.
	aux := time.NewTicker(AUX_POLL_MS * time.Millisecond)
	defer aux.Stop()

	for {
		select {
		case <-done:
			sdl.CloseAudioDevice(dev)
			return
		case <-aux.C:
			evmu.Lock()
			vc.AuxSample(uint16(opt.Aux))
			evmu.Unlock()
		}
	}
}
