package dom

const (
	EventClick  = "click"
	EventSubmit = "submit"
)

type Event struct {
	Type string
	// Target is the element the event was dispatched on.
	Target *Element
	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

func (ev *Event) PreventDefault()        { ev.defaultPrevented = true }
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }
func (ev *Event) StopPropagation()       { ev.stopped = true }

// AddEventListener registers fn for events of type typ on e.
func (e *Element) AddEventListener(typ string, fn Listener) {
	byType, ok := e.doc.listeners[e.node]
	if !ok {
		byType = make(map[string][]Listener)
		e.doc.listeners[e.node] = byType
	}
	byType[typ] = append(byType[typ], fn)
}

// DispatchEvent runs the listeners on e, then on each ancestor until one
// stops propagation. It reports whether the default action may proceed.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	for n := e.node; n != nil; n = n.Parent {
		fns := append([]Listener(nil), e.doc.listeners[n][ev.Type]...)
		if len(fns) == 0 {
			continue
		}
		ev.CurrentTarget = e.doc.wrap(n)
		for _, fn := range fns {
			fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	return !ev.defaultPrevented
}

// Click dispatches a click event on e.
func (e *Element) Click() {
	e.DispatchEvent(&Event{Type: EventClick})
}

// Submit dispatches a submit event on e.
func (e *Element) Submit() bool {
	return e.DispatchEvent(&Event{Type: EventSubmit})
}
