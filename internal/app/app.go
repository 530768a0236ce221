// Package app is the todo list controller. It owns the state container,
// writes every new state to the key-value store and patches the document
// so it mirrors the state without re-rendering the whole list.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/state"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/view/dom"
)

// StorageKey is where the encoded list lives in the store.
const StorageKey = "todos"

const DefaultSelector = "#app"

// Class names the controller reads from and writes to the document. Front
// ends use them to find what to draw and which buttons to click.
const (
	ClassList        = "todo-list-items"
	ClassForm        = "todo-form"
	ClassInput       = "todo-form-input"
	ClassItem        = "todo-list-item"
	ClassItemText    = "todo-list-item-text"
	ClassBtnComplete = "todo-list-item-btn-complete"
	ClassBtnRemove   = "todo-list-item-btn-remove"
	ClassCompleted   = "completed"
	ClassNotFound    = "todos-not-found"
)

const (
	notFoundMarkup = `<h2 class="todos-not-found">Todos not found</h2>`
	completeLabel  = "Complete"
	removeLabel    = "Delete"
)

var ErrMissingElement = errors.New("app: missing element")

type Config struct {
	// Selector locates the root element; defaults to DefaultSelector.
	Selector string
	Document *dom.Document
	Storage  store.KV
	Logger   *log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type App struct {
	store   *state.Store
	storage store.KV
	doc     *dom.Document
	root    *dom.Element
	list    *dom.Element
	form    *dom.Element
	lastID  int
	now     func() time.Time
	log     *log.Logger
}

// New loads the persisted list, binds the form and renders every item.
func New(cfg Config) (*App, error) {
	if cfg.Document == nil {
		return nil, fmt.Errorf("%w: nil document", ErrMissingElement)
	}
	if cfg.Storage == nil {
		return nil, errors.New("app: nil storage")
	}
	if cfg.Selector == "" {
		cfg.Selector = DefaultSelector
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	a := &App{
		storage: cfg.Storage,
		doc:     cfg.Document,
		now:     cfg.Now,
		log:     cfg.Logger,
	}

	a.root = a.doc.QuerySelector(cfg.Selector)
	if a.root == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, cfg.Selector)
	}
	a.list = a.root.QuerySelector("." + ClassList)
	if a.list == nil {
		return nil, fmt.Errorf("%w: %s .%s", ErrMissingElement, cfg.Selector, ClassList)
	}
	a.form = a.root.QuerySelector("." + ClassForm)
	if a.form == nil {
		return nil, fmt.Errorf("%w: %s .%s", ErrMissingElement, cfg.Selector, ClassForm)
	}

	a.store = state.New(state.TodosReducer, a.load())
	a.form.AddEventListener(dom.EventSubmit, func(ev *dom.Event) {
		ev.PreventDefault()
		a.Submit(ev)
	})

	a.lastID = model.MaxID(a.store.GetState())
	a.checkEmpty()
	a.render()
	return a, nil
}

func (a *App) load() []model.Todo {
	raw, err := a.storage.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.log.Warn("read stored todos, starting empty", "err", err)
		}
		return []model.Todo{}
	}
	todos, err := model.Decode(raw)
	if err != nil {
		a.log.Warn("decode stored todos, starting empty", "err", err)
	}
	return todos
}

// State returns the current list.
func (a *App) State() []model.Todo { return a.store.GetState() }

// Subscribe forwards to the state container.
func (a *App) Subscribe(fn func([]model.Todo)) func() { return a.store.Subscribe(fn) }

func (a *App) Document() *dom.Document { return a.doc }

// LastID is the highest id handed out so far.
func (a *App) LastID() int { return a.lastID }

// Add appends item to the list and to the view. An id above LastID becomes
// the new LastID so later submits do not reuse it.
func (a *App) Add(item model.Todo) {
	a.dispatch(state.Action{
		Kind:      state.KindAdd,
		ID:        item.ID,
		Title:     item.Title,
		Completed: item.Completed,
		Date:      item.Date,
	})
	if item.ID > a.lastID {
		a.lastID = item.ID
	}
	a.checkEmpty()
	a.renderItem(item, opAddItem)
}

// Toggle flips the completed flag of id.
func (a *App) Toggle(id int) {
	a.dispatch(state.Action{Kind: state.KindToggle, ID: id})
	a.renderItem(model.Todo{ID: id}, opUpdateItem)
}

// Remove deletes id from the list and the view.
func (a *App) Remove(id int) {
	a.dispatch(state.Action{Kind: state.KindRemove, ID: id})
	a.renderItem(model.Todo{ID: id}, opRemoveItem)
	a.checkEmpty()
}

// Submit handles the add form. Blank input is ignored.
func (a *App) Submit(ev *dom.Event) {
	if ev != nil {
		ev.PreventDefault()
	}
	input := a.form.QuerySelector("." + ClassInput)
	if input == nil {
		a.log.Warn("submit without input element")
		return
	}
	title := model.NormalizeTitle(input.Value())
	if title == "" {
		return
	}
	item := model.Todo{
		ID:        a.lastID + 1,
		Title:     title,
		Completed: false,
		Date:      a.now().UnixMilli(),
	}
	a.Add(item)
	input.SetValue("")
}

// Enter types text into the form input and submits the form.
func (a *App) Enter(text string) {
	if input := a.form.QuerySelector("." + ClassInput); input != nil {
		input.SetValue(text)
	}
	a.form.Submit()
}

// ItemElement returns the list element rendered for id, or nil.
func (a *App) ItemElement(id int) *dom.Element {
	if els := a.itemElements(id); len(els) > 0 {
		return els[0]
	}
	return nil
}

func (a *App) dispatch(action state.Action) {
	a.store.Dispatch(action)
	a.log.Debug("dispatch", "kind", action.Kind, "id", action.ID)
	a.persist()
}

func (a *App) persist() {
	raw, err := model.Encode(a.store.GetState())
	if err != nil {
		a.log.Warn("encode todos", "err", err)
		return
	}
	if err := a.storage.Set(StorageKey, raw); err != nil {
		a.log.Warn("persist todos", "err", err)
	}
}
