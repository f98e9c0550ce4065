package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

func databaseColumns() []column[models.Database] {
	return []column[models.Database]{
		{Name: "id", String: func(d models.Database) string { return strconv.FormatInt(d.ID, 10) },
			Numeric: func(d models.Database) float64 { return float64(d.ID) }},
		{Name: "project", String: func(d models.Database) string { return d.ProjectName }, Search: true},
		{Name: "database", String: func(d models.Database) string { return d.DBName }, Search: true},
		{Name: "server", String: func(d models.Database) string { return d.ServerName }, Search: true},
		{Name: "type", String: func(d models.Database) string { return d.DatabaseType }, Search: true},
		{Name: "active", String: func(d models.Database) string { return strconv.FormatBool(d.IsActive) }},
	}
}

// Databases runs the registered databases screen, including the server-side
// maintenance actions (connection test, backup).
func (a *App) Databases(ctx context.Context) error {
	page := newListPage("databases", databaseColumns(), a.databases.GetAll)
	page.reload(ctx)
	page.render(a.out)

	for {
		cmd, args, ok := a.readCommand("databases")
		if !ok {
			return nil
		}
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprintln(a.out, "Commands: list, search <term>, sort <column>, add, edit <id>, test <id>, backup <id>, delete <id>, show <id>, refresh, retry, back")
		case "list":
			page.render(a.out)
		case "search":
			page.setSearch(strings.Join(args, " "))
			page.render(a.out)
		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: sort <column>")
				continue
			}
			if err := page.sortBy(args[0]); err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			page.render(a.out)
		case "refresh", "retry":
			page.reload(ctx)
			page.render(a.out)
		case "add":
			_ = a.addDatabase(ctx, page)
		case "edit":
			_ = a.editDatabase(ctx, page, args)
		case "test":
			_ = a.runDatabaseAction(ctx, args, "test", a.databases.TestConnection)
		case "backup":
			_ = a.runDatabaseAction(ctx, args, "back up", a.databases.Backup)
		case "delete":
			_ = a.deleteDatabase(ctx, page, args)
		case "show":
			_ = a.showDatabase(ctx, args)
		case "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) databaseDraft(current models.Database) (models.NewDatabase, error) {
	var d models.NewDatabase
	var err error

	if d.ProjectName, err = GetText(a.reader, "Project name", current.ProjectName, a.out); err != nil {
		return d, err
	}
	if d.DBName, err = GetText(a.reader, "Database name", current.DBName, a.out); err != nil {
		return d, err
	}
	if d.ServerName, err = GetText(a.reader, "Server name", current.ServerName, a.out); err != nil {
		return d, err
	}

	portText := ""
	if current.Port != 0 {
		portText = strconv.Itoa(current.Port)
	}
	if portText, err = GetText(a.reader, "Port", portText, a.out); err != nil {
		return d, err
	}
	if portText != "" {
		port, err := strconv.Atoi(portText)
		if err != nil {
			return d, fmt.Errorf("invalid port %q", portText)
		}
		d.Port = port
	}

	if d.DatabaseType, err = GetText(a.reader, "Database type", current.DatabaseType, a.out); err != nil {
		return d, err
	}
	if d.IsActive, err = GetBool(a.reader, "Active", current.IsActive, a.out); err != nil {
		return d, err
	}

	return d, nil
}

func (a *App) addDatabase(ctx context.Context, page *listPage[models.Database]) error {
	draft, err := a.databaseDraft(models.Database{IsActive: true})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if draft.ProjectName == "" || draft.DBName == "" {
		fmt.Fprintln(a.out, "Project name and database name are required.")
		return nil
	}

	created, err := a.databases.Create(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Registered database %d.\n", created.ID)
	page.reload(ctx)
	page.render(a.out)
	return nil
}

func (a *App) editDatabase(ctx context.Context, page *listPage[models.Database], args []string) error {
	id, err := a.idArg(args, "Enter database id to edit")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	current, err := a.databases.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	draft, err := a.databaseDraft(*current)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	if _, err := a.databases.Update(ctx, id, draft); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Updated.")
	page.reload(ctx)
	page.render(a.out)
	return nil
}

// runDatabaseAction runs one of the server-side maintenance calls and prints
// the reported outcome.
func (a *App) runDatabaseAction(ctx context.Context, args []string, verb string,
	action func(ctx context.Context, id int64) (*models.OpResult, error)) error {

	id, err := a.idArg(args, fmt.Sprintf("Enter database id to %s", verb))
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	result, err := action(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if result.Success {
		fmt.Fprintf(a.out, "OK: %s\n", result.Message)
	} else {
		fmt.Fprintf(a.out, "Failed: %s\n", result.Message)
	}
	return nil
}

func (a *App) deleteDatabase(ctx context.Context, page *listPage[models.Database], args []string) error {
	id, err := a.idArg(args, "Enter database id to delete")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	yes, err := Confirm(a.reader, fmt.Sprintf("Delete database registration %d", id), a.out)
	if err != nil || !yes {
		return err
	}

	if err := a.databases.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Deleted.")
	page.reload(ctx)
	return nil
}

func (a *App) showDatabase(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter database id to show")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	d, err := a.databases.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Project: %s\n", d.ProjectName)
	fmt.Fprintf(a.out, "Database: %s\n", d.DBName)
	fmt.Fprintf(a.out, "Server: %s:%d\n", d.ServerName, d.Port)
	fmt.Fprintf(a.out, "Type: %s\n", d.DatabaseType)
	fmt.Fprintf(a.out, "Active: %t\n", d.IsActive)
	if d.ConnectionString != "" {
		fmt.Fprintf(a.out, "Connection: %s\n", d.ConnectionString)
	}
	return nil
}
