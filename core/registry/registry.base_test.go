package registry

import (
	"sync"
	"testing"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "first")
	if err != nil || !isNew {
		t.Fatalf("Register mới phải trả về (true, nil), got (%v, %v)", isNew, err)
	}

	// Ghi đè: isNew = false
	isNew, err = r.Register("a", "second")
	if err != nil || isNew {
		t.Fatalf("Register ghi đè phải trả về (false, nil), got (%v, %v)", isNew, err)
	}

	if v, exists := r.Get("a"); !exists || v != "second" {
		t.Errorf("Get(a) = (%q, %v), muốn second", v, exists)
	}
}

func TestRegistry_NameRong_Loi(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("name rỗng phải trả về lỗi")
	}
}

func TestRegistry_NamesSapXep(t *testing.T) {
	r := NewRegistry[int]()
	for _, name := range []string{"c", "a", "b"} {
		r.Register(name, 0)
	}
	names := r.Names()
	if len(names) != 3 || names[0] != "a" || names[2] != "c" {
		t.Errorf("Names = %v, muốn sắp xếp tăng dần", names)
	}
	if r.Len() != 3 {
		t.Errorf("Len = %d, muốn 3", r.Len())
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()
	if r.Len() != 1 {
		t.Errorf("Len = %d, muốn 1", r.Len())
	}
}
