package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"campushub/internal/client/client"
	"campushub/internal/netx"
)

// startsAtLayout is the format users type when scheduling an event.
const startsAtLayout = "2006-01-02 15:04"

func (a *App) AddClub(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Club name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (e.g. music, sports)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	logoKey, err := a.uploadMedia(ctx, "Logo file path (optional)")
	if err != nil {
		return err
	}

	c, err := a.api.CreateClub(ctx, client.NewClub{
		Name:        name,
		Description: description,
		Category:    category,
		LogoKey:     logoKey,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Club created:", c.ID)
	return nil
}

func (a *App) AddEvent(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Event title", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	when, err := GetSimpleText(a.reader, "Starts at (YYYY-MM-DD HH:MM, local time)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	startsAt, err := time.ParseInLocation(startsAtLayout, when, time.Local)
	if err != nil {
		printlnFn("Could not parse the date, expected format: " + startsAtLayout)
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (e.g. music, sports)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	location, err := GetSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	clubID, err := GetSimpleText(a.reader, "Club id (optional, leave blank for a campus-wide event)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	imageKey, err := a.uploadMedia(ctx, "Poster file path (optional)")
	if err != nil {
		return err
	}

	in := client.NewEvent{
		Title:       title,
		Description: description,
		StartsAt:    startsAt,
		Category:    category,
		Location:    location,
		ImageKey:    imageKey,
	}
	if clubID != "" {
		in.ClubID = &clubID
	}

	e, err := a.api.CreateEvent(ctx, in)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Event created:", e.ID)
	return nil
}

func (a *App) AddNews(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Announcement title", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	content, err := GetSimpleText(a.reader, "Content", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	clubID, err := GetSimpleText(a.reader, "Club id (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	in := client.NewAnnouncement{Title: title, Content: content}
	if clubID != "" {
		in.ClubID = &clubID
	}

	n, err := a.api.CreateAnnouncement(ctx, in)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Announcement posted:", n.ID)
	return nil
}

// uploadMedia prompts for a local file path and, if one is given, uploads the
// file through a presigned URL. Returns the storage key, or "" when skipped.
func (a *App) uploadMedia(ctx context.Context, prompt string) (string, error) {
	path, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return "", err
	}
	if strings.TrimSpace(path) == "" {
		return "", nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		printlnFn(err.Error())
		return "", err
	}

	target, err := a.api.GetUploadURL(ctx)
	if err != nil {
		printlnFn(err.Error())
		return "", err
	}

	if err := netx.UploadToS3PresignedURL(target.URL, file); err != nil {
		printlnFn(err.Error())
		return "", err
	}
	return target.Key, nil
}
