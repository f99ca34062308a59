// Package scene models the retained scene graph the galaxy renders from:
// buffer-backed geometry, shader materials and points objects with explicit
// disposal.
package scene

import "slices"

// Object is anything that can be attached to a Scene.
type Object interface {
	Name() string
}

// Scene is an ordered container of attached objects.
type Scene struct {
	objects []Object
}

// New returns an empty scene.
func New() *Scene { return &Scene{} }

// Add attaches obj. Attaching an object twice is a no-op.
func (s *Scene) Add(obj Object) {
	if obj == nil || s.Contains(obj) {
		return
	}
	s.objects = append(s.objects, obj)
}

// Remove detaches obj if present.
func (s *Scene) Remove(obj Object) {
	if obj == nil {
		return
	}
	s.objects = slices.DeleteFunc(s.objects, func(o Object) bool { return o == obj })
}

// Contains reports whether obj is attached.
func (s *Scene) Contains(obj Object) bool {
	return slices.Contains(s.objects, obj)
}

// Objects returns the attached objects in attach order.
func (s *Scene) Objects() []Object { return s.objects }

// Len reports the number of attached objects.
func (s *Scene) Len() int { return len(s.objects) }
