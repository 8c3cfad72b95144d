package main

import "flag"

type VoiceSettings struct {
	List       bool
	Port       string
	Samplefreq int
	Aux        int
	Seed       uint
	Debug      bool
	Usage      int
}

func NewVoiceSettings() *VoiceSettings {
	opt := &VoiceSettings{}
	return opt
}

func (opt *VoiceSettings) ParseArgs() {
	flag.BoolVar(&opt.List, "list", false, "List MIDI input ports and exit")
	flag.StringVar(&opt.Port, "port", "", "MIDI input port name (substring match), default = first port")
	flag.IntVar(&opt.Samplefreq, "samplerate", 44100, "Audio sample rate in Hz")
	flag.IntVar(&opt.Aux, "aux", 512, "Auxiliary control sample 0..1023, center = 512")
	flag.UintVar(&opt.Seed, "seed", 0, "Noise shift register seed (nonzero), 0 = default")
	flag.BoolVar(&opt.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&opt.Usage, "h", 0, "Display usage information")
	flag.Parse()
}
