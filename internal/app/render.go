package app

import (
	"strconv"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/view/dom"
)

type renderOp int

const (
	opAddItem renderOp = iota
	opUpdateItem
	opRemoveItem
)

func (op renderOp) String() string {
	switch op {
	case opAddItem:
		return "add"
	case opUpdateItem:
		return "update"
	case opRemoveItem:
		return "remove"
	}
	return "renderOp(" + strconv.Itoa(int(op)) + ")"
}

// render builds the list from scratch; only used at startup.
func (a *App) render() {
	for _, item := range a.store.GetState() {
		a.renderItem(item, opAddItem)
	}
}

func (a *App) renderItem(item model.Todo, op renderOp) {
	switch op {
	case opAddItem:
		a.addItemElement(item)
	case opUpdateItem:
		for _, el := range a.itemElements(item.ID) {
			el.ToggleClass(ClassCompleted)
		}
	case opRemoveItem:
		for _, el := range a.itemElements(item.ID) {
			el.Remove()
		}
	default:
		a.log.Warn("unknown render op", "op", op)
	}
}

func (a *App) addItemElement(item model.Todo) {
	li := a.doc.CreateElement("li")
	li.AddClass("list-group-item", ClassItem)
	if item.Completed {
		li.AddClass(ClassCompleted)
	}
	li.SetData("id", strconv.Itoa(item.ID))

	text := a.doc.CreateElement("span")
	text.AddClass(ClassItemText)
	text.SetText(item.Title)

	id := item.ID
	toggle := a.doc.CreateElement("button")
	toggle.AddClass(ClassBtnComplete, "btn", "btn-success")
	toggle.SetText(completeLabel)
	toggle.AddEventListener(dom.EventClick, func(*dom.Event) { a.Toggle(id) })

	remove := a.doc.CreateElement("button")
	remove.AddClass(ClassBtnRemove, "btn", "btn-danger")
	remove.SetText(removeLabel)
	remove.AddEventListener(dom.EventClick, func(*dom.Event) { a.Remove(id) })

	li.AppendChild(text)
	li.AppendChild(toggle)
	li.AppendChild(remove)
	a.list.AppendChild(li)
}

func (a *App) itemElements(id int) []*dom.Element {
	want := strconv.Itoa(id)
	var out []*dom.Element
	for _, el := range a.list.QuerySelectorAll("." + ClassItem) {
		if el.Data("id") == want {
			out = append(out, el)
		}
	}
	return out
}

// checkEmpty shows the placeholder while the list is empty.
func (a *App) checkEmpty() {
	placeholder := a.list.QuerySelector("." + ClassNotFound)
	if len(a.store.GetState()) == 0 {
		if placeholder == nil {
			if err := a.list.InsertAdjacentHTML("beforeend", notFoundMarkup); err != nil {
				a.log.Warn("insert empty placeholder", "err", err)
			}
		}
		return
	}
	if placeholder != nil {
		placeholder.Remove()
	}
}
