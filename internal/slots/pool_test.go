package slots

import "testing"

func collect(p *Pool[string]) map[int]string {
	out := make(map[int]string)
	for i, v := range p.All() {
		out[i] = *v
	}
	return out
}

func TestPoolInsertAppends(t *testing.T) {
	p := New[string](0)
	for i, v := range []string{"a", "b", "c"} {
		if got := p.Insert(v); got != i {
			t.Errorf("Insert(%q) = %d, want %d", v, got, i)
		}
	}
	if p.Cap() != 3 || p.Live() != 3 || p.Free() != 0 {
		t.Errorf("Cap/Live/Free = %d/%d/%d, want 3/3/0", p.Cap(), p.Live(), p.Free())
	}
}

func TestPoolReusesEarliestTombstone(t *testing.T) {
	p := New[string](4)
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		p.Insert(v)
	}
	// Remove out of order; reuse must still go lowest index first.
	p.Remove(3)
	p.Remove(1)
	p.Remove(4)

	want := []int{1, 3, 4, 5}
	for _, w := range want {
		if got := p.Insert("x"); got != w {
			t.Errorf("Insert() = %d, want %d", got, w)
		}
	}
	if p.Cap() != 6 {
		t.Errorf("Cap() = %d, want 6", p.Cap())
	}
}

func TestPoolRemove(t *testing.T) {
	p := New[string](0)
	p.Insert("a")
	p.Insert("b")

	if !p.Remove(0) {
		t.Error("Remove(0) = false, want true")
	}
	if p.Remove(0) {
		t.Error("Remove(0) twice = true, want false")
	}
	if p.Remove(-1) || p.Remove(9) {
		t.Error("Remove out of range = true, want false")
	}
	if _, ok := p.Get(0); ok {
		t.Error("Get(0) on tombstone = ok")
	}
	if v, ok := p.Get(1); !ok || *v != "b" {
		t.Errorf("Get(1) = %v, %v", v, ok)
	}
	if p.Cap() != 2 || p.Live() != 1 || p.Free() != 1 {
		t.Errorf("Cap/Live/Free = %d/%d/%d, want 2/1/1", p.Cap(), p.Live(), p.Free())
	}
}

func TestPoolAllSkipsTombstones(t *testing.T) {
	p := New[string](0)
	for _, v := range []string{"a", "b", "c"} {
		p.Insert(v)
	}
	p.Remove(1)

	got := collect(p)
	if len(got) != 2 || got[0] != "a" || got[2] != "c" {
		t.Errorf("All() = %v", got)
	}

	var order []int
	for i := range p.All() {
		order = append(order, i)
		break
	}
	if len(order) != 1 || order[0] != 0 {
		t.Errorf("early break yielded %v", order)
	}
}

func TestPoolAllMutatesInPlace(t *testing.T) {
	p := New[string](0)
	p.Insert("a")
	for _, v := range p.All() {
		*v = "z"
	}
	if v, _ := p.Get(0); *v != "z" {
		t.Errorf("Get(0) = %q, want z", *v)
	}
}

func TestPoolResetKeepsCapacity(t *testing.T) {
	p := New[string](0)
	for _, v := range []string{"a", "b", "c"} {
		p.Insert(v)
	}
	p.Reset()

	if p.Cap() != 3 || p.Live() != 0 || p.Free() != 3 {
		t.Errorf("Cap/Live/Free = %d/%d/%d, want 3/0/3", p.Cap(), p.Live(), p.Free())
	}
	if got := p.Insert("x"); got != 0 {
		t.Errorf("Insert after Reset = %d, want 0", got)
	}
}

func BenchmarkPoolChurn(b *testing.B) {
	p := New[int](1024)
	for i := 0; i < 1024; i++ {
		p.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i % 1024
		p.Remove(j)
		p.Insert(j)
	}
}
