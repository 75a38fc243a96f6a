// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/osdwidgets/prefs"
	"github.com/jetsetilly/osdwidgets/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "osdwidgets_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")

	// maximum length crops existing and future values
	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")
	test.ExpectSuccess(t, v.Set("qux"))
	test.ExpectEquality(t, v.String(), "qu")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("osd.scale", &v))
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "osd.scale :: 1.500\n")
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1920
	h = 1080

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1920,1080\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1920)
	test.ExpectEquality(t, h, 1080)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(32))
	test.ExpectEquality(t, post, 32)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 32)
	test.ExpectEquality(t, post, 32)
}

func TestSaveLoadPreservesForeignKeys(t *testing.T) {
	fn := tmpPrefFile(t)

	// a disk with two entries is saved
	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a, b prefs.Int
	test.ExpectSuccess(t, dskA.Add("osd.fontsize", &a))
	test.ExpectSuccess(t, dskA.Add("ozone.theme", &b))
	test.ExpectSuccess(t, a.Set(32))
	test.ExpectSuccess(t, b.Set(1))
	test.DemandSuccess(t, dskA.Save())

	// a second disk only knows about one entry. saving must not lose the
	// other entry
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var c prefs.Int
	test.ExpectSuccess(t, dskB.Add("osd.fontsize", &c))
	test.DemandSuccess(t, dskB.Load(false))
	test.ExpectEquality(t, c.Get().(int), 32)
	test.ExpectSuccess(t, c.Set(24))
	test.DemandSuccess(t, dskB.Save())

	cmpTmpFile(t, fn, "osd.fontsize :: 24\nozone.theme :: 1\n")
}

func TestLoadMissingFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("osd.fps.show", &v))

	err = dsk.Load(false)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrNoPrefsFile))

	// file is created when saveOnFail is true
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "osd.fps.show :: false\n")
}

func TestDiskKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("osd.msgqueue.onscreen", &v))
	test.ExpectFailure(t, dsk.Add("osd.msgqueue.onscreen", &v))
	test.ExpectFailure(t, dsk.Add("bad :: key", &v))

	test.ExpectSuccess(t, dsk.Set("osd.msgqueue.onscreen", 4))
	val, err := dsk.Get("osd.msgqueue.onscreen")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, val.(int), 4)

	err = dsk.Set("osd.missing", 1)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrNoKey))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
	test.ExpectSuccess(t, strings.Contains(dsk.String(), "osd.msgqueue.onscreen :: 0"))
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	prefs.PushCommandLineStack("osd.fontsize::" + strconv.Itoa(48))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("osd.fontsize", &v))
	test.ExpectEquality(t, v.Get().(int), 48)

	// value is consumed from the command line group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
