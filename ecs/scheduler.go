package ecs

// System advances the world by one frame of dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once, in order.
func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
