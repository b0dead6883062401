package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabicon/internal/application/usecase"
	"github.com/bnema/tabicon/internal/domain/entity"
	"github.com/bnema/tabicon/internal/domain/favicon"
	domainurl "github.com/bnema/tabicon/internal/domain/url"
	infrafavicon "github.com/bnema/tabicon/internal/infrastructure/favicon"
	"github.com/bnema/tabicon/internal/logging"
)

const defaultReplayConcurrency = 4

// ErrInvalidScript is returned for scripts that parse but cannot be replayed.
var ErrInvalidScript = errors.New("invalid replay script")

// Script is a replay script: a list of tabs, each with an ordered event stream.
//
//	[[tab]]
//	id = "docs"
//
//	[[tab.event]]
//	url = "https://example.com/"
//	icon = "icons/example-32.png"
//
//	[[tab.event]]
//	navigate = "about:blank"
type Script struct {
	Tabs []ScriptTab `toml:"tab"`

	baseDir string
}

// ScriptTab is one tab of a replay script. An empty ID is replaced with a UUID.
type ScriptTab struct {
	ID     string        `toml:"id"`
	Events []ScriptEvent `toml:"event"`
}

// ScriptEvent is one step of a tab's event stream.
type ScriptEvent struct {
	// URL sets the page URL before the icon is delivered.
	URL string `toml:"url"`
	// Icon is a file path relative to the script, or an http(s) URL.
	Icon string `toml:"icon"`
	// Navigate changes the page URL without delivering a candidate.
	Navigate string `toml:"navigate"`
	Detach   bool   `toml:"detach"`
	Attach   bool   `toml:"attach"`
}

func (e ScriptEvent) empty() bool {
	return e.URL == "" && e.Icon == "" && e.Navigate == "" && !e.Detach && !e.Attach
}

// LoadScript reads and parses a replay script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data, filepath.Dir(path))
}

// ParseScript parses a replay script. Relative icon paths resolve against baseDir.
func ParseScript(data []byte, baseDir string) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	s.baseDir = baseDir

	if len(s.Tabs) == 0 {
		return nil, fmt.Errorf("%w: no tabs", ErrInvalidScript)
	}

	seen := make(map[string]struct{}, len(s.Tabs))
	for i := range s.Tabs {
		tab := &s.Tabs[i]
		if tab.ID == "" {
			tab.ID = uuid.NewString()
		}
		if _, dup := seen[tab.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tab id %q", ErrInvalidScript, tab.ID)
		}
		seen[tab.ID] = struct{}{}

		for j, ev := range tab.Events {
			if ev.empty() {
				return nil, fmt.Errorf("%w: tab %s event %d is empty", ErrInvalidScript, tab.ID, j+1)
			}
			if ev.Attach && ev.Detach {
				return nil, fmt.Errorf("%w: tab %s event %d both attaches and detaches", ErrInvalidScript, tab.ID, j+1)
			}
		}
	}
	return &s, nil
}

// IconFetcher downloads remote icon bytes.
type IconFetcher interface {
	Fetch(ctx context.Context, iconURL string) ([]byte, error)
}

// ReplayResult is the state of one tab after its events were replayed.
type ReplayResult struct {
	TabID   entity.TabID
	PageURL string
	Held    favicon.Held
	HasHeld bool
	// Showing reports whether the tab would display its held icon for PageURL.
	Showing       bool
	Notifications int
}

// Replayer feeds script events through the tab favicon owner.
type Replayer struct {
	tabs        *usecase.ManageTabFaviconsUseCase
	fetcher     IconFetcher
	concurrency int
}

// NewReplayer creates a Replayer. fetcher may be nil when scripts only reference files.
func NewReplayer(tabs *usecase.ManageTabFaviconsUseCase, fetcher IconFetcher) *Replayer {
	return &Replayer{
		tabs:        tabs,
		fetcher:     fetcher,
		concurrency: defaultReplayConcurrency,
	}
}

// Run decodes every icon of the script concurrently, then replays each tab's
// events in order. Tabs stay open so their held icons can be inspected.
func (r *Replayer) Run(ctx context.Context, script *Script) ([]ReplayResult, error) {
	log := logging.FromContext(ctx)

	images, err := r.loadIcons(ctx, script)
	if err != nil {
		return nil, err
	}

	results := make([]ReplayResult, 0, len(script.Tabs))
	for i, st := range script.Tabs {
		tabCtx := logging.WithTabID(ctx, st.ID)
		res, err := r.runTab(tabCtx, st, images[i])
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	log.Debug().Int("tabs", len(results)).Msg("replay finished")
	return results, nil
}

func (r *Replayer) runTab(ctx context.Context, st ScriptTab, images []image.Image) (ReplayResult, error) {
	tab := &replayTab{id: entity.TabID(st.ID)}
	tf, err := r.tabs.Open(ctx, tab)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("open tab %s: %w", st.ID, err)
	}

	observer := &countingObserver{}
	tf.AddObserver(observer)
	defer tf.RemoveObserver(observer)
	tf.AttachWebContents(ctx)

	for j, ev := range st.Events {
		switch {
		case ev.Detach:
			tf.DetachWebContents(ctx)
		case ev.Attach:
			tf.AttachWebContents(ctx)
		}
		if ev.Navigate != "" {
			tab.url = ev.Navigate
		}
		if ev.URL != "" {
			tab.url = ev.URL
		}
		if img := images[j]; img != nil {
			tf.OnFaviconAvailable(logging.WithURL(ctx, tab.url), img)
		}
	}

	held, ok := tf.Tracker().Held()
	return ReplayResult{
		TabID:         tab.id,
		PageURL:       tab.url,
		Held:          held,
		HasHeld:       ok,
		Showing:       tf.Tracker().Current(tab.url, tab.IsNativePage(), tf.HasContent()) != nil,
		Notifications: observer.count,
	}, nil
}

// loadIcons returns decoded icons indexed by [tab][event]; events without an icon stay nil.
func (r *Replayer) loadIcons(ctx context.Context, script *Script) ([][]image.Image, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	images := make([][]image.Image, len(script.Tabs))
	for i, tab := range script.Tabs {
		images[i] = make([]image.Image, len(tab.Events))
		for j, ev := range tab.Events {
			if ev.Icon == "" {
				continue
			}
			g.Go(func() error {
				data, err := r.readIcon(gctx, script.baseDir, ev.Icon)
				if err != nil {
					return fmt.Errorf("tab %s event %d: %w", tab.ID, j+1, err)
				}
				img, err := infrafavicon.Decode(data)
				if err != nil {
					return fmt.Errorf("tab %s event %d: decode %s: %w", tab.ID, j+1, ev.Icon, err)
				}
				images[i][j] = img
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *Replayer) readIcon(ctx context.Context, baseDir, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		if r.fetcher == nil {
			return nil, fmt.Errorf("remote icon %s: no fetcher configured", ref)
		}
		return r.fetcher.Fetch(ctx, ref)
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	return data, nil
}

// WriteHeldIcons writes each held icon as <tab id>.png under dir and returns
// the written path per tab id. Tab ids that sanitize to the same file name
// (a:b and a/b) get a -2, -3... suffix in result order.
func WriteHeldIcons(dir string, results []ReplayResult) (map[entity.TabID]string, error) {
	const outDirPerm = 0o755
	if err := os.MkdirAll(dir, outDirPerm); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make(map[entity.TabID]string, len(results))
	used := make(map[string]struct{}, len(results))
	for _, res := range results {
		if !res.HasHeld {
			continue
		}
		path := filepath.Join(dir, uniqueIconName(string(res.TabID), used))
		if err := writePNG(path, res.Held.Image); err != nil {
			return nil, err
		}
		paths[res.TabID] = path
	}
	return paths, nil
}

// uniqueIconName returns a PNG file name for tabID not yet in used, and
// records it. Names compare case-insensitively for case-folding filesystems.
func uniqueIconName(tabID string, used map[string]struct{}) string {
	base := strings.TrimSuffix(domainurl.SanitizeDomainForPNG(tabID), ".png")
	name := base + ".png"
	for n := 2; ; n++ {
		if _, taken := used[strings.ToLower(name)]; !taken {
			break
		}
		name = fmt.Sprintf("%s-%d.png", base, n)
	}
	used[strings.ToLower(name)] = struct{}{}
	return name
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// replayTab is the TabPage the replay drives.
type replayTab struct {
	id  entity.TabID
	url string
}

func (t *replayTab) ID() entity.TabID   { return t.id }
func (t *replayTab) CurrentURL() string { return t.url }
func (t *replayTab) IsNativePage() bool { return domainurl.IsNativeURL(t.url) }

type countingObserver struct {
	count int
}

func (o *countingObserver) OnFaviconUpdated(_ context.Context, _ entity.TabID, _ image.Image) {
	o.count++
}
