package ecs

import (
	"testing"
)

// 测试组件类型定义
type testRowComponent struct {
	Index int
	Y     float64
}

type testScaleComponent struct {
	Scale float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testRowComponent{Index: 3, Y: 200})

	row, found := GetComponent[*testRowComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if row.Index != 3 || row.Y != 200 {
		t.Errorf("Component data mismatch, got %+v", row)
	}

	// 组件以指针存储，修改对后续查询可见
	row.Y = 42
	again, _ := GetComponent[*testRowComponent](em, id)
	if again.Y != 42 {
		t.Errorf("mutation not visible, got Y=%v", again.Y)
	}

	// 未添加的类型返回 false
	if _, found := GetComponent[*testScaleComponent](em, id); found {
		t.Error("Scale component should not be found")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testScaleComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testScaleComponent{Scale: 1})
	if !HasComponent[*testScaleComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testScaleComponent](em, id)
	if HasComponent[*testScaleComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testRowComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.Exists(id) || HasComponent[*testRowComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testRowComponent{Index: i})
		if i%2 == 0 {
			AddComponent(em, id, &testScaleComponent{Scale: 1})
			ids = append(ids, id)
		}
	}

	rows := GetEntitiesWith1[*testRowComponent](em)
	if len(rows) != 50 {
		t.Fatalf("Expected 50 rows, got %d", len(rows))
	}
	for i, id := range rows {
		row, _ := GetComponent[*testRowComponent](em, id)
		if row.Index != i {
			t.Fatalf("query order broken at %d: got index %d", i, row.Index)
		}
	}

	both := GetEntitiesWith2[*testRowComponent, *testScaleComponent](em)
	if len(both) != len(ids) {
		t.Fatalf("Expected %d entities with both components, got %d", len(ids), len(both))
	}
	for i := range both {
		if both[i] != ids[i] {
			t.Errorf("both[%d] = %d, want %d", i, both[i], ids[i])
		}
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testRowComponent{})
	}

	em.Clear()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d after Clear, want 0", em.EntityCount())
	}

	// ID 不回收
	if id := em.CreateEntity(); id != 6 {
		t.Errorf("next ID = %d, want 6", id)
	}
}
