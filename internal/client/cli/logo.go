package cli

import (
	"context"
	"fmt"
)

// Logo runs the tenant logo screen. There is only ever one logo, so the
// screen is a small command loop rather than a list page.
func (a *App) Logo(ctx context.Context) error {
	a.showLogo(ctx)

	for {
		cmd, _, ok := a.readCommand("logo")
		if !ok {
			return nil
		}
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprintln(a.out, "Commands: show, upload, replace, delete, back")
		case "show":
			a.showLogo(ctx)
		case "upload":
			_ = a.uploadLogo(ctx)
		case "replace":
			_ = a.replaceLogo(ctx)
		case "delete":
			_ = a.deleteLogo(ctx)
		case "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) showLogo(ctx context.Context) {
	current, err := a.logo.Current(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if current == nil {
		fmt.Fprintln(a.out, "No logo uploaded yet.")
		return
	}
	fmt.Fprintf(a.out, "Logo: %s (%s)\n", current.FileName, current.ContentType)
	if current.URL != "" {
		fmt.Fprintf(a.out, "URL: %s\n", current.URL)
	}
	if current.UploadedDate != "" {
		fmt.Fprintf(a.out, "Uploaded: %s\n", current.UploadedDate)
	}
}

func (a *App) uploadLogo(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter logo file path", a.out)
	if err != nil {
		return err
	}
	att, err := readAttachment(path)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	uploaded, err := a.logo.Upload(ctx, *att)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Uploaded %s.\n", uploaded.FileName)
	return nil
}

func (a *App) replaceLogo(ctx context.Context) error {
	current, err := a.logo.Current(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if current == nil {
		fmt.Fprintln(a.out, "No logo to replace; use 'upload' instead.")
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter logo file path", a.out)
	if err != nil {
		return err
	}
	att, err := readAttachment(path)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	replaced, err := a.logo.Replace(ctx, current.ID, *att)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Replaced with %s.\n", replaced.FileName)
	return nil
}

func (a *App) deleteLogo(ctx context.Context) error {
	current, err := a.logo.Current(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if current == nil {
		fmt.Fprintln(a.out, "No logo to delete.")
		return nil
	}

	yes, err := Confirm(a.reader, fmt.Sprintf("Delete logo %q", current.FileName), a.out)
	if err != nil || !yes {
		return err
	}

	if err := a.logo.Delete(ctx, current.ID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
