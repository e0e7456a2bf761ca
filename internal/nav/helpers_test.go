package nav

import "github.com/abhisek/cloudquest/internal/celebrate"

type effectFunc func(particles int)

func (f effectFunc) Burst(b celebrate.Burst) { f(b.Particles) }
