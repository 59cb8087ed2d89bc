package navigation

import (
	"sync"
	"testing"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()

	st := s.Get(42)
	if st.ChatID != 42 || st.Menu != MenuRoot || st.Page != 0 || st.MessageRef != nil {
		t.Errorf("fresh state = %+v", st)
	}
	if s.Len() != 0 {
		t.Errorf("Get must not create entries, Len = %d", s.Len())
	}
}

func TestStorePutGetClear(t *testing.T) {
	s := NewStore()

	ref := &MessageRef{ChatID: 7, MessageID: 100}
	s.Put(State{ChatID: 7, Menu: MenuItemList, Page: 2, MessageRef: ref})

	got := s.Get(7)
	if got.Menu != MenuItemList || got.Page != 2 || got.MessageRef != ref {
		t.Errorf("stored state = %+v", got)
	}

	// Other chats are unaffected.
	if other := s.Get(8); other.Menu != MenuRoot {
		t.Errorf("chat 8 state = %+v", other)
	}

	s.Clear(7)
	if got := s.Get(7); got.Menu != MenuRoot || got.Page != 0 {
		t.Errorf("cleared state = %+v", got)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			for p := 1; p <= 50; p++ {
				s.Put(State{ChatID: chatID, Menu: MenuItemList, Page: p})
				_ = s.Get(chatID)
			}
		}(int64(i))
	}
	wg.Wait()

	if s.Len() != 16 {
		t.Errorf("Len = %d, want 16", s.Len())
	}
	for i := int64(0); i < 16; i++ {
		if st := s.Get(i); st.Page != 50 {
			t.Errorf("chat %d final page = %d", i, st.Page)
		}
	}
}
