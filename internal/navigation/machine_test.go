package navigation

import (
	"strings"
	"testing"

	"allcitybot/internal/catalog"
	"allcitybot/internal/menu"
)

func testMachine(t *testing.T) *Machine {
	t.Helper()
	cat := catalog.Default(catalog.DefaultPageSize)
	return NewMachine(cat, &menu.Renderer{Catalog: cat, City: "Riverton"})
}

func textEvent(text string) Event {
	return Event{Kind: EventText, Text: text}
}

func buttonEvent(token string, ref *MessageRef) Event {
	return Event{Kind: EventButton, Token: token, Ref: ref}
}

func TestMenuCommandOpensRoot(t *testing.T) {
	m := testMachine(t)

	st := State{ChatID: 1, Menu: MenuItemList, Page: 3, MessageRef: &MessageRef{ChatID: 1, MessageID: 5}}
	next, act := m.Transition(st, textEvent("Menu"))

	if next.Menu != MenuRoot || next.Page != 0 || next.MessageRef != nil {
		t.Errorf("next = %+v", next)
	}
	if act.Kind != ActionSendNew {
		t.Errorf("action = %+v", act)
	}
	if act.View.Text != "Select <i>category</i>" {
		t.Errorf("view = %q", act.View.Text)
	}
}

func TestUnknownTextFallsBackToWelcome(t *testing.T) {
	m := testMachine(t)

	next, act := m.Transition(State{ChatID: 1}, textEvent("hello"))

	if next.Menu != MenuRoot || next.Page != 0 {
		t.Errorf("next = %+v", next)
	}
	if act.Kind != ActionSendNew || !strings.Contains(act.View.Text, "AllCity") {
		t.Errorf("action = %+v", act)
	}
}

func TestFoodOpensFirstListPage(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	next, act := m.Transition(State{ChatID: 1, Menu: MenuRoot}, buttonEvent(TokenFood, ref))

	if next.Menu != MenuItemList || next.Page != 1 || next.MessageRef != ref {
		t.Errorf("next = %+v", next)
	}
	if act.Kind != ActionEdit || act.Ref != ref {
		t.Errorf("action = %+v", act)
	}
	if !strings.Contains(act.View.Text, "<b>1/3</b>") {
		t.Errorf("view = %q", act.View.Text)
	}
}

func TestNextAndBackPaging(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	st := State{ChatID: 1, Menu: MenuItemList, Page: 1, MessageRef: ref}

	st, act := m.Transition(st, buttonEvent(TokenNext, ref))
	if st.Page != 2 || act.Kind != ActionEdit {
		t.Fatalf("after Next: state %+v action %+v", st, act)
	}

	st, act = m.Transition(st, buttonEvent(TokenNext, ref))
	if st.Page != 3 {
		t.Fatalf("after second Next: %+v", st)
	}

	st, act = m.Transition(st, buttonEvent(TokenBack, ref))
	if st.Page != 2 || act.Kind != ActionEdit {
		t.Fatalf("after Back: state %+v action %+v", st, act)
	}
}

func TestPagingClampsAtBounds(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	last := State{ChatID: 1, Menu: MenuItemList, Page: 3, MessageRef: ref}
	next, act := m.Transition(last, buttonEvent(TokenNext, ref))
	if next.Page != 3 {
		t.Errorf("Next on last page moved to %d", next.Page)
	}
	if act.Kind != ActionEdit || !strings.Contains(act.View.Text, "<b>3/3</b>") {
		t.Errorf("clamped Next action = %+v", act)
	}

	first := State{ChatID: 1, Menu: MenuItemList, Page: 1, MessageRef: ref}
	next, _ = m.Transition(first, buttonEvent(TokenBack, ref))
	if next.Page != 1 {
		t.Errorf("Back on first page moved to %d", next.Page)
	}
}

func TestPagingOutsideListIsIgnored(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	for _, token := range []string{TokenNext, TokenBack} {
		st := State{ChatID: 1, Menu: MenuRoot}
		next, act := m.Transition(st, buttonEvent(token, ref))
		if act.Kind != ActionNone {
			t.Errorf("%s at root produced %+v", token, act)
		}
		if next != st {
			t.Errorf("%s at root changed state to %+v", token, next)
		}
	}
}

func TestBackToMain(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	st := State{ChatID: 1, Menu: MenuItemList, Page: 2, MessageRef: ref}
	next, act := m.Transition(st, buttonEvent(TokenBackToMain, ref))

	if next.Menu != MenuRoot || next.Page != 0 || next.MessageRef != ref {
		t.Errorf("next = %+v", next)
	}
	if act.Kind != ActionEdit || act.View.Text != "Select <i>category</i>" {
		t.Errorf("action = %+v", act)
	}
}

func TestVenueSelectionSendsDetailWithoutMoving(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	st := State{ChatID: 1, Menu: MenuItemList, Page: 2, MessageRef: ref}
	next, act := m.Transition(st, buttonEvent("cafe5", ref))

	if next != st {
		t.Errorf("detail changed state: %+v", next)
	}
	if act.Kind != ActionSendNew || act.Track {
		t.Errorf("action = %+v", act)
	}
	if !strings.Contains(act.View.Text, "Cafe 5") {
		t.Errorf("view = %q", act.View.Text)
	}
}

func TestUnknownTokenIsIgnored(t *testing.T) {
	m := testMachine(t)

	st := State{ChatID: 1, Menu: MenuItemList, Page: 1}
	next, act := m.Transition(st, buttonEvent("bogus", nil))

	if act.Kind != ActionNone || next != st {
		t.Errorf("unknown token: state %+v action %+v", next, act)
	}
}

func TestButtonWithoutRefSendsTrackedMessage(t *testing.T) {
	m := testMachine(t)

	// Stored state has no rendered menu and the platform supplied no ref:
	// the machine must fall back to a fresh, tracked send.
	next, act := m.Transition(State{ChatID: 1, Menu: MenuRoot}, buttonEvent(TokenFood, nil))

	if act.Kind != ActionSendNew || !act.Track {
		t.Errorf("action = %+v", act)
	}
	if next.Menu != MenuItemList || next.Page != 1 {
		t.Errorf("next = %+v", next)
	}
}

func TestEventRefWinsOverStoredRef(t *testing.T) {
	m := testMachine(t)

	stored := &MessageRef{ChatID: 1, MessageID: 5}
	pressed := &MessageRef{ChatID: 1, MessageID: 11}

	st := State{ChatID: 1, Menu: MenuItemList, Page: 1, MessageRef: stored}
	next, act := m.Transition(st, buttonEvent(TokenNext, pressed))

	if act.Ref != pressed {
		t.Errorf("action edits %+v, want the pressed message", act.Ref)
	}
	if next.MessageRef != pressed {
		t.Errorf("next tracks %+v, want the pressed message", next.MessageRef)
	}
}

func TestUnhandledEventDoesNothing(t *testing.T) {
	m := testMachine(t)

	st := State{ChatID: 1, Menu: MenuItemList, Page: 2}
	next, act := m.Transition(st, Event{Kind: EventUnhandled})

	if act.Kind != ActionNone || next != st {
		t.Errorf("unhandled: state %+v action %+v", next, act)
	}
}

func TestTransitionIsDeterministic(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}

	st := State{ChatID: 1, Menu: MenuItemList, Page: 2, MessageRef: ref}
	ev := buttonEvent(TokenNext, ref)

	n1, a1 := m.Transition(st, ev)
	n2, a2 := m.Transition(st, ev)

	if n1 != n2 {
		t.Errorf("states differ: %+v vs %+v", n1, n2)
	}
	if a1.Kind != a2.Kind || a1.View.Text != a2.View.Text {
		t.Errorf("actions differ: %+v vs %+v", a1, a2)
	}
}

func TestListPagesStayInBounds(t *testing.T) {
	m := testMachine(t)
	ref := &MessageRef{ChatID: 1, MessageID: 9}
	max := m.Catalog.PageCount()

	st := State{ChatID: 1, Menu: MenuItemList, Page: 1, MessageRef: ref}
	script := []string{
		TokenBack, TokenNext, TokenNext, TokenNext, TokenNext,
		TokenBack, TokenBack, TokenBack, TokenBack, TokenNext,
	}
	for i, token := range script {
		st, _ = m.Transition(st, buttonEvent(token, ref))
		if st.Page < 1 || st.Page > max {
			t.Fatalf("step %d (%s): page %d out of [1, %d]", i, token, st.Page, max)
		}
	}
}

func TestMenuAndKindStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{MenuRoot.String(), "root"},
		{MenuCategory.String(), "category"},
		{MenuItemList.String(), "item_list"},
		{EventButton.String(), "button"},
		{EventUnhandled.String(), "unhandled"},
		{ActionSendNew.String(), "send_new"},
		{ActionEdit.String(), "edit"},
		{ActionNone.String(), "none"},
	}
	for i, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("case %d: %q, want %q", i, tc.got, tc.want)
		}
	}
}
