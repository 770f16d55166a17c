package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/besuikerd/dictset/dictset"
	"github.com/besuikerd/dictset/history"
	"github.com/besuikerd/dictset/idset"
	"github.com/besuikerd/dictset/intidset"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNoSuchTodo      = errors.New("no such todo")
	ErrNothingToUndo   = errors.New("nothing to undo")
)

type (
	Todo struct {
		Title string
		Done  bool
	}

	Tag struct {
		Name string
	}

	// model is replaced as a whole on every change, the previous value
	// stays valid and is what undo restores.
	model struct {
		todos *idset.IdSet[int, int, Todo]
		tags  *dictset.DictSet[string, Tag]
	}

	App struct {
		model  model
		undo   *history.History[model]
		out    io.Writer
		logger *zap.Logger
	}
)

func tagOrd(t Tag) string {
	return strings.ToLower(t.Name)
}

func NewApp(out io.Writer, logger *zap.Logger, historyLimit int) *App {
	return &App{
		model: model{
			todos: intidset.Empty[Todo](),
			tags:  dictset.Empty[string, Tag](tagOrd),
		},
		undo:   history.New[model](historyLimit),
		out:    out,
		logger: logger,
	}
}

// Exec runs a single command line. quit reports whether the session should end.
func (a *App) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	a.logger.Debug("exec", zap.String("cmd", cmd), zap.Strings("args", args))

	switch cmd {
	case "add":
		err = a.add(args)
	case "done":
		err = a.done(args)
	case "rm":
		err = a.remove(args)
	case "clear":
		a.clear()
	case "ls":
		err = a.list(args)
	case "tag":
		err = a.tag(args)
	case "untag":
		err = a.untag(args)
	case "tags":
		a.listTags()
	case "undo":
		err = a.restore()
	case "help":
		a.help()
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.Wrapf(ErrUnknownCommand, "%q", cmd)
	}

	return false, err
}

func (a *App) commit(next model) {
	a.undo.Push(a.model)
	a.model = next
}

func (a *App) add(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(ErrMissingArgument, "add needs a title")
	}

	var id int
	next := a.model
	next.todos = a.model.todos.InsertWithID(func(newID int) Todo {
		id = newID
		return Todo{Title: strings.Join(args, " ")}
	})
	a.commit(next)

	fmt.Fprintf(a.out, "added #%d\n", id)
	return nil
}

func (a *App) done(args []string) error {
	id, err := a.todoID(args)
	if err != nil {
		return err
	}

	if t, _ := a.model.todos.Get(id); t.Done {
		return nil
	}

	next := a.model
	next.todos = a.model.todos.Update(id, func(t Todo, _ bool) (Todo, bool) {
		t.Done = true
		return t, true
	})
	a.commit(next)

	return nil
}

func (a *App) remove(args []string) error {
	id, err := a.todoID(args)
	if err != nil {
		return err
	}

	next := a.model
	next.todos = a.model.todos.Remove(id)
	a.commit(next)

	return nil
}

func (a *App) clear() {
	open := a.model.todos.Filter(func(t Todo) bool { return !t.Done })
	removed := a.model.todos.Size() - open.Size()
	if removed == 0 {
		return
	}

	next := a.model
	next.todos = open
	a.commit(next)

	fmt.Fprintf(a.out, "cleared %d\n", removed)
}

func (a *App) list(args []string) error {
	todos := a.model.todos
	if len(args) > 0 {
		finished, open := todos.Partition(func(t Todo) bool { return t.Done })
		switch strings.ToLower(args[0]) {
		case "done":
			todos = finished
		case "open":
			todos = open
		default:
			return errors.Errorf("ls: unknown filter %q", args[0])
		}
	}

	if todos.IsEmpty() {
		fmt.Fprintln(a.out, "nothing to do")
		return nil
	}

	for _, p := range todos.ToList() {
		mark := " "
		if p.Value.Done {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] #%d %s\n", mark, p.Key, p.Value.Title)
	}

	return nil
}

func (a *App) tag(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(ErrMissingArgument, "tag needs a name")
	}

	next, changed := a.model, false
	for _, name := range args {
		tag := Tag{Name: name}
		if current, ok := next.tags.Get(next.tags.Ord(tag)); ok && current == tag {
			continue
		}
		next.tags = next.tags.Insert(tag)
		changed = true
	}

	if changed {
		a.commit(next)
	}

	return nil
}

func (a *App) untag(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(ErrMissingArgument, "untag needs a name")
	}

	next, changed := a.model, false
	for _, name := range args {
		tag := Tag{Name: name}
		if !next.tags.Member(next.tags.Ord(tag)) {
			continue
		}
		next.tags = next.tags.Remove(tag)
		changed = true
	}

	if changed {
		a.commit(next)
	}

	return nil
}

func (a *App) listTags() {
	names := dictset.Foldl(a.model.tags, func(t Tag, acc []string) []string {
		return append(acc, t.Name)
	}, []string(nil))

	fmt.Fprintln(a.out, strings.Join(names, " "))
}

func (a *App) restore() error {
	prev, err := a.undo.Pop()
	if err != nil {
		if errors.Is(err, history.ErrEmpty) {
			return ErrNothingToUndo
		}
		return err
	}

	a.model = prev
	return nil
}

func (a *App) help() {
	fmt.Fprint(a.out, `commands:
  add <title>     add a todo
  done <id>       mark a todo as done
  rm <id>         remove a todo
  clear           remove all done todos
  ls [done|open]  list todos
  tag <name>...   add tags
  untag <name>... remove tags
  tags            list tags
  undo            revert the last change
  quit            leave
`)
}

func (a *App) todoID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.Wrap(ErrMissingArgument, "expected a todo id")
	}

	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", args[0])
	}

	if !a.model.todos.Member(id) {
		return 0, errors.Wrapf(ErrNoSuchTodo, "#%d", id)
	}

	return id, nil
}
