// seehuhn.de/go/fontpatch - patch metrics and names in sfnt font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontpatch

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/parser"
)

// Font is an sfnt font file held in memory.
//
// Every table is kept in binary form.  Tables are decoded on demand by
// the operations of this package and written back only when they change.
// A Font is not safe for concurrent use.
type Font struct {
	ScalerType uint32

	tables   map[string][]byte
	modified bool
}

// Read reads a font from r.
func Read(r io.ReaderAt) (*Font, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	f := &Font{
		ScalerType: info.ScalerType,
		tables:     make(map[string][]byte, len(info.Toc)),
	}
	for name := range info.Toc {
		data, err := info.ReadTableBytes(r, name)
		if err != nil {
			return nil, err
		}
		f.tables[name] = data
	}
	return f, nil
}

// Open reads a font from a file.
func Open(fname string) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// Has returns true if the font contains all the given tables.
func (f *Font) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := f.tables[name]; !ok {
			return false
		}
	}
	return true
}

// Table returns the binary data of a table.
// If the table is missing, a *header.ErrMissing is returned.
// The returned slice must not be modified.
func (f *Font) Table(name string) ([]byte, error) {
	data, ok := f.tables[name]
	if !ok {
		return nil, &header.ErrMissing{TableName: name}
	}
	return data, nil
}

// SetTable replaces the data of a table, or adds a new table.
// A nil slice removes the table.
func (f *Font) SetTable(name string, data []byte) {
	if data == nil {
		f.RemoveTable(name)
		return
	}
	if old, ok := f.tables[name]; ok && bytes.Equal(old, data) {
		return
	}
	f.tables[name] = data
	f.modified = true
}

// RemoveTable removes a table from the font.
func (f *Font) RemoveTable(name string) {
	if _, ok := f.tables[name]; !ok {
		return
	}
	delete(f.tables, name)
	f.modified = true
}

// TableNames returns the names of all tables in the font,
// in alphabetical order.
func (f *Font) TableNames() []string {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modified returns true if any table was changed since the font was read.
func (f *Font) Modified() bool {
	return f.modified
}

// Write writes the font in sfnt format to w.
//
// A digital signature ("DSIG" table) is omitted from modified fonts,
// since it would no longer match the font data.
func (f *Font) Write(w io.Writer) (int64, error) {
	tables := make(map[string][]byte, len(f.tables))
	for name, data := range f.tables {
		if name == "DSIG" && f.modified {
			logrus.Debug("removing the digital signature of the modified font")
			continue
		}
		tables[name] = data
	}
	if data, ok := tables["head"]; ok {
		if len(data) < 12 {
			return 0, &parser.InvalidFontError{
				SubSystem: "fontpatch",
				Reason:    "head table too short",
			}
		}
		// header.Write stores the checksum adjustment in this buffer.
		tables["head"] = bytes.Clone(data)
	}
	return header.Write(w, f.ScalerType, tables)
}

// setModifiedTime records t as the modification time in the "head" table.
func (f *Font) setModifiedTime(t time.Time) error {
	headInfo, err := f.Head()
	if err != nil {
		return err
	}
	headInfo.SetModifiedTime(t)
	f.SetTable("head", headInfo.Encode())
	return nil
}

// Save writes the font to a file.
//
// The data is first written to a temporary file in the same directory,
// which then replaces the target.  If the target exists, its permissions
// are kept.
func (f *Font) Save(fname string) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(fname); err == nil {
		perm = fi.Mode().Perm()
	}

	dir, base := filepath.Split(fname)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	_, err = f.Write(tmp)
	if err != nil {
		return err
	}
	err = tmp.Chmod(perm)
	if err != nil {
		return err
	}
	err = tmp.Close()
	tmp = nil
	if err != nil {
		os.Remove(tmpName)
		return err
	}

	err = os.Rename(tmpName, fname)
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Edit opens a font file, calls fn to modify the font, and saves the
// result back to the same file.
//
// The file is only written if fn returns nil and the font was modified.
// Otherwise the file is left untouched, and the error from fn (if any)
// is returned.  When the file is written, the modification time in the
// "head" table is set to the current time.
func Edit(fname string, fn func(*Font) error) error {
	f, err := Open(fname)
	if err != nil {
		return err
	}

	err = fn(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	if !f.Modified() {
		logrus.Debugf("%s: no changes", fname)
		return nil
	}
	err = f.setModifiedTime(time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	err = f.Save(fname)
	if err != nil {
		return err
	}
	logrus.Debugf("%s: saved", fname)
	return nil
}
