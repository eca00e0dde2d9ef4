package argon2

import (
	"errors"
	"testing"
)

func validContext() *Context {
	return &Context{
		Out:   make([]byte, 32),
		Pwd:   []byte("password"),
		Salt:  []byte("somesalt"),
		TCost: 1,
		MCost: MinMemory(1),
		Lanes: 1,
	}
}

func TestValidateAcceptsMinimalValidContext(t *testing.T) {
	if err := validContext().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateNilContext(t *testing.T) {
	var c *Context
	assertKind(t, c.Validate(), ErrIncorrectParameter)
}

func TestValidateOutputChecks(t *testing.T) {
	c := validContext()
	c.Out = nil
	assertKind(t, c.Validate(), ErrOutputPtrNull)

	c = validContext()
	c.Out = make([]byte, 1)
	assertKind(t, c.Validate(), ErrOutputTooShort)
}

func TestValidateSaltChecks(t *testing.T) {
	c := validContext()
	c.Salt = []byte("short")
	assertKind(t, c.Validate(), ErrSaltTooShort)
}

func TestValidateTimeCost(t *testing.T) {
	c := validContext()
	c.TCost = 0
	assertKind(t, c.Validate(), ErrTimeTooSmall)
}

func TestValidateLaneBounds(t *testing.T) {
	c := validContext()
	c.Lanes = 0
	assertKind(t, c.Validate(), ErrLanesTooFew)

	c = validContext()
	c.Lanes = MaxLanes + 1
	c.MCost = MinMemory(c.Lanes)
	assertKind(t, c.Validate(), ErrLanesTooMany)
}

func TestValidateMemoryCost(t *testing.T) {
	c := validContext()
	c.Lanes = 2
	c.MCost = MinMemory(2) - 1
	assertKind(t, c.Validate(), ErrMemoryTooLittle)
}

func TestValidateAllocatorPairing(t *testing.T) {
	c := validContext()
	c.Allocate = func(int) ([]Block, error) { return nil, nil }
	assertKind(t, c.Validate(), ErrFreeMemoryCbkNull)

	c = validContext()
	c.Free = func([]Block) {}
	assertKind(t, c.Validate(), ErrAllocateMemoryCbkNull)

	c = validContext()
	c.Allocate = func(int) ([]Block, error) { return nil, nil }
	c.Free = func([]Block) {}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() with both callbacks set = %v, want nil", err)
	}
}

func TestContextAllocatorDefaultsToHeap(t *testing.T) {
	c := validContext()
	if _, ok := c.allocator().(defaultAllocator); !ok {
		t.Fatalf("allocator() without overrides did not return defaultAllocator")
	}
}

func TestContextAllocatorUsesOverride(t *testing.T) {
	c := validContext()
	called := false
	c.Allocate = func(n int) ([]Block, error) { called = true; return make([]Block, n), nil }
	c.Free = func([]Block) {}

	a := c.allocator()
	if _, err := a.Allocate(4); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if !called {
		t.Fatalf("allocator() did not route through the Context's Allocate override")
	}
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *Error with kind %v", err, want)
	}
	if ae.Kind != want {
		t.Fatalf("err kind = %v, want %v", ae.Kind, want)
	}
}
