package vertexcloud

import (
	"reflect"
	"slices"
)

// Queries visit matching entities in ascending EntityId order within each
// archetype, and archetypes in ascending id order, so frames are reproducible.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }

func (q Query1[A]) Map(m func(EntityId, *A) bool, optionals ...any) {
	id1 := identifyComponent[A](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.sortedArchetypes() {
		comps1, ok1 := columnOf[A](arch, id1, opt)
		if !ok1 {
			continue
		}

		for _, entityId := range arch.sortedEntities() {
			row := arch.entities[entityId]
			if !m(entityId, cell(comps1, row)) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	id1, id2 := identifyComponent[A](q.ecs), identifyComponent[B](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.sortedArchetypes() {
		comps1, ok1 := columnOf[A](arch, id1, opt)
		comps2, ok2 := columnOf[B](arch, id2, opt)
		if !ok1 || !ok2 {
			continue
		}

		for _, entityId := range arch.sortedEntities() {
			row := arch.entities[entityId]
			if !m(entityId, cell(comps1, row), cell(comps2, row)) {
				return
			}
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	id1, id2, id3 := identifyComponent[A](q.ecs), identifyComponent[B](q.ecs), identifyComponent[C](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.sortedArchetypes() {
		comps1, ok1 := columnOf[A](arch, id1, opt)
		comps2, ok2 := columnOf[B](arch, id2, opt)
		comps3, ok3 := columnOf[C](arch, id3, opt)
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		for _, entityId := range arch.sortedEntities() {
			row := arch.entities[entityId]
			if !m(entityId, cell(comps1, row), cell(comps2, row), cell(comps3, row)) {
				return
			}
		}
	}
}

// columnOf returns the component slice of arch for id. A missing optional
// component yields a nil slice and true; a missing required one yields false.
func columnOf[T any](arch *archetype, id componentId, optionals set[componentId]) ([]T, bool) {
	if data, ok := arch.componentData[id]; ok {
		return data.([]T), true
	}
	if _, ok := optionals[id]; ok {
		return nil, true
	}
	return nil, false
}

func cell[T any](column []T, r row) *T {
	if column == nil {
		return nil
	}
	return &column[r]
}

func (ecs *Ecs) sortedArchetypes() []*archetype {
	res := make([]*archetype, 0, len(ecs.archetypes))
	for _, arch := range ecs.archetypes {
		res = append(res, arch)
	}
	slices.SortFunc(res, func(a, b *archetype) int {
		if a.id < b.id {
			return -1
		}
		if a.id > b.id {
			return 1
		}
		return 0
	})
	return res
}

func (arch *archetype) sortedEntities() []EntityId {
	res := make([]EntityId, 0, len(arch.entities))
	for entityId := range arch.entities {
		res = append(res, entityId)
	}
	slices.Sort(res)
	return res
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		cType := reflect.TypeOf(c)
		if cType.Kind() == reflect.Pointer {
			cType = cType.Elem()
		}
		res[ecs.getComponentId(cType)] = struct{}{}
	}

	return res
}

func identifyComponent[A any](ecs *Ecs) componentId {
	return ecs.getComponentId(reflect.TypeOf((*A)(nil)).Elem())
}

// hasComponent reports whether entityId currently carries a component of type A.
func hasComponent[A any](cmd *Commands, entityId EntityId) bool {
	ecs := cmd.app.ecs
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return false
	}
	_, ok = ecs.archetypes[archId].componentData[identifyComponent[A](ecs)]
	return ok
}
