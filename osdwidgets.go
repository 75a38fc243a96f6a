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

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/jetsetilly/osdwidgets/gui/sdlimgui"
	"github.com/jetsetilly/osdwidgets/gui/termosd"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/modalflag"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/performance"
	"github.com/jetsetilly/osdwidgets/prefs"
	"github.com/jetsetilly/osdwidgets/resources"
	"github.com/jetsetilly/osdwidgets/scripting"
	"github.com/jetsetilly/osdwidgets/scripting/kraken"
	"github.com/jetsetilly/osdwidgets/scripting/lichen"
	"github.com/jetsetilly/osdwidgets/statsview"
	"github.com/jetsetilly/osdwidgets/version"
)

// SDL requires that the window is created and serviced by the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubMode("RUN", "open a window and show the on-screen display")
	md.AddSubMode("TERM", "show the on-screen display in the terminal")
	md.AddSubMode("SCRIPT", "run addons against an off-screen display and print the log")
	md.AddSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch md.Mode() {
	case "RUN":
		err = launch(ctx, md, runMode)
	case "TERM":
		err = launch(ctx, md, termMode)
	case "SCRIPT":
		err = launch(ctx, md, scriptMode)
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		stop()
		os.Exit(20)
	}
}

// options common to every mode that shows the on-screen display
type options struct {
	log        *bool
	prefs      *string
	addons     *string
	profile    *string
	stats      *bool
	memviz     *string
	theme      *string
	noMenu     *bool
	noDemo     *bool
	fps        *int
	frames     *int
	fullScreen *bool
}

type mode int

const (
	runMode mode = iota
	termMode
	scriptMode
)

func launch(ctx context.Context, md *modalflag.Modes, m mode) error {
	md.NewMode()

	var opts options
	opts.log = md.AddBool("log", false, "echo log to stderr")
	opts.prefs = md.AddString("prefs", "", "preference overrides (eg. \"osd.fontsize::24; osd.fps.show::true\")")
	opts.addons = md.AddString("addons", "", "addon manifest (default is addons/manifest.yaml in the resource directory)")
	opts.profile = md.AddString("profile", "none", "run performance profiler (cpu, mem, trace, all)")
	opts.memviz = md.AddString("memviz", "", "write a graph of the widget context to the named dot file on exit")
	if statsview.Available() {
		opts.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	switch m {
	case runMode:
		opts.fullScreen = md.AddBool("fullscreen", false, "start in full screen")
		fallthrough
	case termMode:
		opts.theme = md.AddString("theme", ozone.BasicBlack.Name, "menu theme. a built in theme name or a TOML file")
		opts.noMenu = md.AddBool("nomenu", false, "do not create the menu")
		opts.noDemo = md.AddBool("nodemo", false, "do not send demonstration messages")
	case scriptMode:
		opts.frames = md.AddInt("frames", 300, "number of frames to run")
	}
	if m != runMode {
		opts.fps = md.AddInt("fps", 30, "frames per second")
	}

	md.AdditionalHelp("keys: P pause, R run, F fast forward, W rewind, S slow motion, M mute, U unmute,\n" +
		"+/- volume, F1 help, F12 screenshot, Tab menu, Q quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " "))
	}

	if *opts.log {
		logger.SetEcho(os.Stderr, true)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
	}

	if opts.stats != nil && *opts.stats {
		err := statsview.Launch(os.Stdout)
		if err != nil {
			return err
		}
	}

	profile, err := performance.ParseProfileString(*opts.profile)
	if err != nil {
		return err
	}

	return performance.RunProfiler(profile, version.ApplicationName, func() error {
		return start(ctx, m, opts)
	})
}

func start(ctx context.Context, m mode, opts options) error {
	p, err := gfxwidgets.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "osdwidgets", "using default preferences: %v", err)
		p = gfxwidgets.DefaultPreferences()
	}

	osd := gfxwidgets.NewContext(p)
	osd.SetCore(demoCore{start: time.Now()})
	if *opts.memviz != "" {
		defer dumpMemviz(*opts.memviz, osd)
	}

	bridges, err := attachAddons(ctx, osd, *opts.addons)
	defer func() {
		for _, b := range bridges {
			b.Deinit()
		}
	}()
	if err != nil {
		return err
	}

	if m == scriptMode {
		return runScript(ctx, osd, *opts.fps, *opts.frames, os.Stdout)
	}

	var menu *ozone.Menu
	if !*opts.noMenu {
		theme, err := selectTheme(*opts.theme)
		if err != nil {
			return err
		}
		menu = ozone.NewMenu(osd.Animation(), theme)
		menu.SetTabs([]string{"Main Menu", "Settings", "History"}, []string{"Atari 2600"})
		menu.SetEntries([]string{"Load Content", "Online Updater", "Information", "Configuration File", "Help", "Quit"})
		defer menu.Free()
	}

	var g gui.GUI
	switch m {
	case runMode:
		img, err := sdlimgui.NewSdlImgui(osd, menu)
		if err != nil {
			return err
		}
		g = img
	case termMode:
		trm, err := termosd.NewTermOSD(osd, menu, *opts.fps)
		if err != nil {
			return err
		}
		g = trm
	}
	defer g.Destroy()

	if opts.fullScreen != nil && *opts.fullScreen {
		g.SetFeatureNoError(gui.ReqFullScreen, true)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grp, ctx := errgroup.WithContext(ctx)
	if !*opts.noDemo {
		grp.Go(func() error {
			return demo(ctx, g)
		})
	}

	// the gui is serviced by the main thread. the demo is stopped when the
	// gui returns for any reason
	err = g.Service(ctx)
	cancel()

	return errors.Join(err, grp.Wait())
}

// attachAddons creates a bridge for each scripting engine and attaches it to
// the widget context. The addons in the manifest are then loaded. A missing
// manifest is only an error if the path was given explicitly.
func attachAddons(ctx context.Context, osd *gfxwidgets.Context, path string) ([]*scripting.Bridge, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = resources.JoinPath("addons", "manifest.yaml")
		if err != nil {
			return nil, err
		}
	}

	manifest, err := scripting.LoadManifest(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var bridges []*scripting.Bridge
	for _, e := range []scripting.Engine{kraken.New(), lichen.New()} {
		if len(manifest.For(e.Name())) == 0 {
			continue
		}

		b := scripting.NewBridge(e, osd)
		if err := b.Init(); err != nil {
			return bridges, err
		}
		bridges = append(bridges, b)

		if err := osd.AttachScript(b); err != nil {
			return bridges, err
		}

		n, err := b.LoadAddons(ctx, manifest)
		if err != nil {
			return bridges, err
		}
		logger.Logf(logger.Allow, "osdwidgets", "%d %s addons loaded", n, e.Name())
	}

	return bridges, nil
}

// selectTheme returns the built in theme with the name or else loads the
// theme from the TOML file.
func selectTheme(name string) (ozone.Theme, error) {
	for _, t := range ozone.Themes() {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return ozone.LoadTheme(name)
}

func dumpMemviz(filename string, osd *gfxwidgets.Context) {
	f, err := os.Create(filename)
	if err != nil {
		logger.Log(logger.Allow, "osdwidgets", err)
		return
	}
	defer f.Close()
	memviz.Map(f, osd)
}
