package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/ahosmi/content-dashboard/internal/calendar"
	"github.com/ahosmi/content-dashboard/internal/store"
	"github.com/ahosmi/content-dashboard/pkg/model"
)

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 6 characters)")
	fs.Parse(args)

	if !a.Auth.Register(ctx, *name, *email, *password) {
		return fmt.Errorf("registration failed")
	}
	a.API.SetToken(a.Auth.Token())
	fmt.Printf("registered and signed in as %s\n", a.Auth.CurrentUser().Username)
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if !a.Auth.Login(ctx, *email, *password) {
		return fmt.Errorf("invalid credentials")
	}
	a.API.SetToken(a.Auth.Token())
	fmt.Printf("signed in as %s\n", a.Auth.CurrentUser().Username)
	return nil
}

// cmdPull replaces the local collection with the server's list.
func (a *app) cmdPull(ctx context.Context) error {
	items, err := a.API.ListContent(ctx)
	if err != nil {
		return err
	}
	a.Store.Restore(store.Snapshot{Contents: items, AIGenerations: a.Store.AIGenerations()})
	a.Store.Flush()
	fmt.Printf("pulled %d items\n", len(items))
	return nil
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "content title")
	platform := fs.String("platform", "", "youtube|instagram|twitter")
	status := fs.String("status", "idea", "idea|scripted|filmed|scheduled")
	date := fs.String("date", "", "planned date, YYYY-MM-DD (default today)")
	tags := fs.String("tags", "", "comma-separated tags")
	notes := fs.String("notes", "", "free-form notes")
	remote := fs.Bool("remote", false, "also create the item on the server")
	fs.Parse(args)

	if *title == "" || *platform == "" {
		return fmt.Errorf("add: -title and -platform are required")
	}

	planned := time.Now()
	if *date != "" {
		var err error
		planned, err = time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("add: invalid -date: %w", err)
		}
	}

	draft := model.ContentDraft{
		Title:       *title,
		Platform:    model.Platform(*platform),
		Status:      model.ContentStatus(*status),
		PlannedDate: planned,
		Tags:        splitTags(*tags),
		Notes:       *notes,
	}

	if *remote {
		created, err := a.API.CreateContent(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Printf("created on server: %s\n", created.ID)
	}

	item := a.Store.Add(draft)
	fmt.Printf("added %q (%s)\n", item.Title, item.ID)
	return nil
}

func (a *app) cmdUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "content id")
	title := fs.String("title", "", "new title")
	platform := fs.String("platform", "", "new platform")
	status := fs.String("status", "", "new status")
	date := fs.String("date", "", "new planned date, YYYY-MM-DD")
	tags := fs.String("tags", "", "new comma-separated tags")
	notes := fs.String("notes", "", "new notes")
	remote := fs.Bool("remote", false, "also update the item on the server")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("update: -id is required")
	}

	var patch model.ContentPatch
	if *title != "" {
		patch.Title = title
	}
	if *platform != "" {
		p := model.Platform(*platform)
		patch.Platform = &p
	}
	if *status != "" {
		st := model.ContentStatus(*status)
		patch.Status = &st
	}
	if *date != "" {
		planned, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("update: invalid -date: %w", err)
		}
		patch.PlannedDate = &planned
	}
	if *tags != "" {
		t := splitTags(*tags)
		patch.Tags = &t
	}
	if *notes != "" {
		patch.Notes = notes
	}

	// The store absorbs unknown ids silently; check here so the CLI can say so.
	if _, ok := a.Store.Lookup(*id); !ok {
		return fmt.Errorf("update: no local item with id %s", *id)
	}

	if *remote {
		if _, err := a.API.UpdateContent(ctx, *id, patch); err != nil {
			return err
		}
	}

	a.Store.Update(*id, patch)
	fmt.Printf("updated %s\n", *id)
	return nil
}

func (a *app) cmdRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	id := fs.String("id", "", "content id")
	remote := fs.Bool("remote", false, "also delete the item on the server")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("remove: -id is required")
	}

	if *remote {
		if err := a.API.DeleteContent(ctx, *id); err != nil {
			return err
		}
	}

	a.Store.Remove(*id)
	fmt.Printf("removed %s\n", *id)
	return nil
}

func (a *app) cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "search text (title or tags)")
	platforms := fs.String("platforms", "", "comma-separated platform filter")
	statuses := fs.String("statuses", "", "comma-separated status filter")
	fs.Parse(args)

	a.Store.SetSearchQuery(*search)
	a.Store.SetSelectedPlatforms(parsePlatforms(*platforms))
	a.Store.SetSelectedStatuses(parseStatuses(*statuses))

	items := a.Store.FilteredContents()
	if len(items) == 0 {
		fmt.Println("no content found")
		return nil
	}
	for _, c := range items {
		tags := ""
		if len(c.Tags) > 0 {
			tags = "  #" + strings.Join(c.Tags, " #")
		}
		fmt.Printf("%s  %-10s %-9s %s  %s%s\n",
			c.ID, c.Platform, c.Status, c.PlannedDate.Format("2006-01-02"), c.Title, tags)
	}
	return nil
}

func (a *app) cmdCalendar(args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ExitOnError)
	month := fs.String("month", "", "reference month, YYYY-MM (default current)")
	selected := fs.String("selected", "", "selected date, YYYY-MM-DD")
	fs.Parse(args)

	reference := time.Now()
	if *month != "" {
		var err error
		reference, err = time.ParseInLocation("2006-01", *month, time.Local)
		if err != nil {
			return fmt.Errorf("calendar: invalid -month: %w", err)
		}
	}

	var sel *time.Time
	if *selected != "" {
		d, err := time.ParseInLocation("2006-01-02", *selected, time.Local)
		if err != nil {
			return fmt.Errorf("calendar: invalid -selected: %w", err)
		}
		sel = &d
	}

	grid := calendar.Grid{
		Reference: reference,
		Today:     time.Now(),
		Selected:  sel,
		Source:    a.Store,
	}

	fmt.Println(reference.Format("January 2006"))
	fmt.Println("Sun    Mon    Tue    Wed    Thu    Fri    Sat")
	days := grid.Days()
	for i, day := range days {
		cell := fmt.Sprintf("%2d", day.Date.Day())
		switch {
		case day.IsToday:
			cell = "[" + cell + "]"
		case day.IsSelected:
			cell = ">" + cell + "<"
		default:
			cell = " " + cell + " "
		}
		if n := len(day.Contents); n > 0 {
			cell += fmt.Sprintf("*%d", n)
		}
		fmt.Printf("%-7s", cell)
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}

	if sel != nil {
		for _, day := range days {
			if !day.IsSelected {
				continue
			}
			fmt.Printf("\n%s:\n", day.Date.Format("January 2, 2006"))
			for _, c := range day.Visible {
				fmt.Printf("  %-10s %s\n", c.Platform, c.Title)
			}
			if day.MoreCount > 0 {
				fmt.Printf("  +%d more\n", day.MoreCount)
			}
			break
		}
	}
	return nil
}

func (a *app) cmdSuggest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	topic := fs.String("topic", "", "topic to generate suggestions for")
	platform := fs.String("platform", "", "target platform")
	refURL := fs.String("url", "", "optional reference page url")
	fs.Parse(args)

	if *topic == "" || *platform == "" {
		return fmt.Errorf("suggest: -topic and -platform are required")
	}

	suggestions, err := a.API.GenerateSuggestions(ctx, model.SuggestionReq{
		Topic:        *topic,
		Platform:     model.Platform(*platform),
		ReferenceURL: *refURL,
	})
	if err != nil {
		return err
	}

	a.Store.AddAIGeneration(model.AIGenerationDraft{
		Topic:       *topic,
		Platform:    model.Platform(*platform),
		Suggestions: suggestions,
	})

	for i, s := range suggestions {
		fmt.Printf("%d. %s\n", i+1, s)
	}
	return nil
}

func (a *app) cmdHistory() error {
	gens := a.Store.AIGenerations()
	if len(gens) == 0 {
		fmt.Println("no generations yet")
		return nil
	}
	for _, g := range gens {
		fmt.Printf("%s  %-10s %s (%d suggestions)\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.Platform, g.Topic, len(g.Suggestions))
	}
	return nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parsePlatforms(s string) []model.Platform {
	var out []model.Platform
	for _, p := range splitTags(s) {
		out = append(out, model.Platform(p))
	}
	return out
}

func parseStatuses(s string) []model.ContentStatus {
	var out []model.ContentStatus
	for _, p := range splitTags(s) {
		out = append(out, model.ContentStatus(p))
	}
	return out
}
