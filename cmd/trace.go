/*
Copyright © 2026 Ryan Dancy

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/ryandancy/enigma-emulator/cipher"
)

// stageLogger adapts a zerolog logger to the engine's StageSink so --trace
// can show the letter hopping through every stage of the signal path. It
// observes only; the machine behaves identically without it.
type stageLogger struct {
	log zerolog.Logger
}

func (s stageLogger) OnStage(ev cipher.StageEvent) {
	e := s.log.Debug().
		Str("stage", string(ev.Stage)).
		Str("in", string(ev.In)).
		Str("out", string(ev.Out)).
		Str("wiring", ev.Wiring)
	if ev.Rotor >= 0 {
		e = e.Int("rotor", ev.Rotor)
	}
	if ev.Stage != cipher.StagePlugboard && ev.Stage != cipher.StagePlugboardBack {
		e = e.Int("position", ev.Position)
	}
	e.Msg("signal")
}
