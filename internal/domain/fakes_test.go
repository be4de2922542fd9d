package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"umlauter.dev/pkg/umlauter/internal/adapter"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

var errNotATagContainer = errors.New("not a tag container")

// fakeCodec keeps tags in memory, keyed by file base name.
type fakeCodec struct {
	tags    map[string]map[m.Field]string
	readErr map[string]error
	saveErr error
	opened  []m.Path
	saved   []m.Path
}

func newFakeCodec() *fakeCodec {
	return &fakeCodec{
		tags:    map[string]map[m.Field]string{},
		readErr: map[string]error{},
	}
}

func (c *fakeCodec) Open(path m.Path) (adapter.TagFile, error) {
	c.opened = append(c.opened, path)

	name := filepath.Base(string(path))
	if err := c.readErr[name]; err != nil {
		return nil, err
	}

	fields := map[m.Field]string{}
	for field, value := range c.tags[name] {
		fields[field] = value
	}

	return &fakeTagFile{codec: c, path: path, fields: fields}, nil
}

type fakeTagFile struct {
	codec  *fakeCodec
	path   m.Path
	fields map[m.Field]string
	closed bool
}

func (f *fakeTagFile) Get(field m.Field) (string, bool) {
	value, ok := f.fields[field]
	return value, ok
}

func (f *fakeTagFile) Set(field m.Field, value string) {
	f.fields[field] = value
}

func (f *fakeTagFile) Save() error {
	f.codec.saved = append(f.codec.saved, f.path)
	if f.codec.saveErr != nil {
		return f.codec.saveErr
	}

	f.codec.tags[filepath.Base(string(f.path))] = f.fields

	return nil
}

func (f *fakeTagFile) Close() error {
	f.closed = true
	return nil
}

// nopUI records what the walk reports. It confirms only when confirm is set.
type nopUI struct {
	confirm    bool
	confirmErr error
	renames    []m.Rename
	failures   []m.Failure
	summaries  int
	fatal      error
	aborted    bool
}

func (u *nopUI) Confirm(context.Context, m.Path) (bool, error) {
	return u.confirm, u.confirmErr
}

func (u *nopUI) DisplayStart(context.Context, m.Path) {}

func (u *nopUI) DisplayRename(_ context.Context, r m.Rename) {
	u.renames = append(u.renames, r)
}

func (u *nopUI) DisplayTagEdit(context.Context, m.TagEdit) {}

func (u *nopUI) DisplayFailure(_ context.Context, f m.Failure) {
	u.failures = append(u.failures, f)
}

func (u *nopUI) DisplayAborted(context.Context) {
	u.aborted = true
}

func (u *nopUI) DisplayFatal(_ context.Context, err error) {
	u.fatal = err
}

func (u *nopUI) DisplaySummary(context.Context, m.Report) {
	u.summaries++
}

// failingFS fails renames and listings of specific base names.
type failingFS struct {
	*adapter.LocalSourceFSAdapter
	renameFails map[string]bool
	listFails   map[string]bool
}

func newFailingFS() *failingFS {
	return &failingFS{
		LocalSourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		renameFails:          map[string]bool{},
		listFails:            map[string]bool{},
	}
}

func (f *failingFS) Rename(oldPath, newPath m.Path) error {
	if f.renameFails[filepath.Base(string(oldPath))] {
		return errors.New("permission denied")
	}

	return f.LocalSourceFSAdapter.Rename(oldPath, newPath)
}

func (f *failingFS) ReadDir(path m.Path) ([]os.DirEntry, error) {
	if f.listFails[filepath.Base(string(path))] {
		return nil, errors.New("input/output error")
	}

	return f.LocalSourceFSAdapter.ReadDir(path)
}
