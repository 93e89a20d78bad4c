package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKindSpecsRegistry(t *testing.T) {
	// 十种设备，表名和路由段互不重复
	require.Len(t, ObjectKindSpecs, 10)

	tables := make(map[string]bool)
	routes := make(map[string]bool)
	kinds := make(map[ObjectKind]bool)
	for _, spec := range ObjectKindSpecs {
		assert.NotEmpty(t, spec.Table)
		assert.NotEmpty(t, spec.Route)
		assert.False(t, tables[spec.Table], "duplicate table %s", spec.Table)
		assert.False(t, routes[spec.Route], "duplicate route %s", spec.Route)
		assert.False(t, kinds[spec.Kind], "duplicate kind %s", spec.Kind)
		tables[spec.Table] = true
		routes[spec.Route] = true
		kinds[spec.Kind] = true
	}
}

func TestSizedKinds(t *testing.T) {
	sized := map[ObjectKind][3]float64{
		KindDoor:      {10, 5, 1},
		KindWindow:    {10, 5, 1},
		KindHeater:    {5, 2, 2},
		KindDataTable: {10, 10, 3},
	}

	for _, spec := range ObjectKindSpecs {
		bounds, ok := sized[spec.Kind]
		if !ok {
			assert.False(t, spec.Sized, "%s should not be sized", spec.Kind)
			continue
		}
		assert.True(t, spec.Sized, "%s should be sized", spec.Kind)
		assert.Equal(t, bounds[0], spec.MaxSizeX)
		assert.Equal(t, bounds[1], spec.MaxSizeY)
		assert.Equal(t, bounds[2], spec.MaxSizeZ)
	}
}

func TestSpecForKind(t *testing.T) {
	spec, ok := SpecForKind(KindDoor)
	require.True(t, ok)
	assert.Equal(t, "doors", spec.Table)
	assert.Equal(t, "doors", spec.Route)

	_, ok = SpecForKind(ObjectKind("teapot"))
	assert.False(t, ok)
}
