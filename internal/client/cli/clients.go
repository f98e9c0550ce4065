package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

func clientColumns() []column[models.Client] {
	return []column[models.Client]{
		{Name: "id", String: func(c models.Client) string { return strconv.FormatInt(c.ID, 10) },
			Numeric: func(c models.Client) float64 { return float64(c.ID) }},
		{Name: "name", String: func(c models.Client) string { return c.Name }, Search: true},
		{Name: "database", String: func(c models.Client) string { return c.DBName }, Search: true},
		{Name: "owner", String: func(c models.Client) string { return c.Owner }, Search: true},
		{Name: "phone", String: func(c models.Client) string { return c.PrimaryPhone }, Search: true},
		{Name: "email", String: func(c models.Client) string { return c.PrimaryEmail }, Search: true},
		{Name: "collection", String: func(c models.Client) string { return strconv.FormatBool(c.CollectionApp) }},
	}
}

// Clients runs the tenant client records screen.
func (a *App) Clients(ctx context.Context) error {
	page := newListPage("clients", clientColumns(), a.clients.GetAll)
	page.reload(ctx)
	page.render(a.out)

	for {
		cmd, args, ok := a.readCommand("clients")
		if !ok {
			return nil
		}
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprintln(a.out, "Commands: list, search <term>, sort <column>, add, edit <id>, delete <id>, show <id>, refresh, retry, back")
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
			_ = a.addClient(ctx, page)
		case "edit":
			_ = a.editClient(ctx, page, args)
		case "delete":
			_ = a.deleteClient(ctx, page, args)
		case "show":
			_ = a.showClient(ctx, args)
		case "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// clientDraft prompts for every editable field, prefilled from current so
// the edit flow only asks for what changes.
func (a *App) clientDraft(current models.Client) (models.NewClient, error) {
	var d models.NewClient
	var err error

	if d.Name, err = GetText(a.reader, "Client name", current.Name, a.out); err != nil {
		return d, err
	}
	if d.DBName, err = GetText(a.reader, "Database name", current.DBName, a.out); err != nil {
		return d, err
	}
	if d.Owner, err = GetText(a.reader, "Owner", current.Owner, a.out); err != nil {
		return d, err
	}
	if d.Address, err = GetText(a.reader, "Address", current.Address, a.out); err != nil {
		return d, err
	}
	if d.PrimaryPhone, err = GetText(a.reader, "Primary phone", current.PrimaryPhone, a.out); err != nil {
		return d, err
	}
	if d.SecondaryPhone, err = GetText(a.reader, "Secondary phone", current.SecondaryPhone, a.out); err != nil {
		return d, err
	}
	if d.PrimaryEmail, err = GetText(a.reader, "Primary email", current.PrimaryEmail, a.out); err != nil {
		return d, err
	}
	if d.SecondaryEmail, err = GetText(a.reader, "Secondary email", current.SecondaryEmail, a.out); err != nil {
		return d, err
	}
	if d.SMSService, err = GetBool(a.reader, "SMS service", current.SMSService, a.out); err != nil {
		return d, err
	}
	if d.ApprovalSystem, err = GetBool(a.reader, "Approval system", current.ApprovalSystem, a.out); err != nil {
		return d, err
	}
	if d.CollectionApp, err = GetBool(a.reader, "Collection app", current.CollectionApp, a.out); err != nil {
		return d, err
	}

	path, err := getSimpleText(a.reader, "Logo file path (empty to skip)", a.out)
	if err != nil {
		return d, err
	}
	if path != "" {
		att, err := readAttachment(path)
		if err != nil {
			return d, fmt.Errorf("read logo: %w", err)
		}
		d.LogoFile = att
	}

	return d, nil
}

func (a *App) addClient(ctx context.Context, page *listPage[models.Client]) error {
	draft, err := a.clientDraft(models.Client{})
	if err != nil {
		return err
	}
	if draft.Name == "" {
		fmt.Fprintln(a.out, "Client name is required.")
		return nil
	}

	created, err := a.clients.Create(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Created client %d.\n", created.ID)
	page.reload(ctx)
	page.render(a.out)
	return nil
}

func (a *App) editClient(ctx context.Context, page *listPage[models.Client], args []string) error {
	id, err := a.idArg(args, "Enter client id to edit")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	current, err := a.clients.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	draft, err := a.clientDraft(*current)
	if err != nil {
		return err
	}

	if _, err := a.clients.Update(ctx, id, draft); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Updated.")
	page.reload(ctx)
	page.render(a.out)
	return nil
}

// deleteClient refuses clients that use the collection app before any
// network call; everything else asks for confirmation first.
func (a *App) deleteClient(ctx context.Context, page *listPage[models.Client], args []string) error {
	id, err := a.idArg(args, "Enter client id to delete")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	var target *models.Client
	for i := range page.items {
		if page.items[i].ID == id {
			target = &page.items[i]
			break
		}
	}
	if target == nil {
		fmt.Fprintln(a.out, "Client not found in the current list.")
		return nil
	}
	if target.CollectionApp {
		fmt.Fprintln(a.out, "This client uses the collection app and cannot be deleted.")
		return nil
	}

	yes, err := Confirm(a.reader, fmt.Sprintf("Delete client %q", target.Name), a.out)
	if err != nil || !yes {
		return err
	}

	if err := a.clients.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Deleted.")
	page.reload(ctx)
	return nil
}

func (a *App) showClient(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter client id to show")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	c, err := a.clients.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Name: %s\n", c.Name)
	fmt.Fprintf(a.out, "Database: %s\n", c.DBName)
	fmt.Fprintf(a.out, "Owner: %s\n", c.Owner)
	fmt.Fprintf(a.out, "Address: %s\n", c.Address)
	fmt.Fprintf(a.out, "Phone: %s / %s\n", c.PrimaryPhone, c.SecondaryPhone)
	fmt.Fprintf(a.out, "Email: %s / %s\n", c.PrimaryEmail, c.SecondaryEmail)
	fmt.Fprintf(a.out, "SMS service: %t\n", c.SMSService)
	fmt.Fprintf(a.out, "Approval system: %t\n", c.ApprovalSystem)
	fmt.Fprintf(a.out, "Collection app: %t\n", c.CollectionApp)
	if c.Logo != "" {
		fmt.Fprintf(a.out, "Logo: %s\n", c.Logo)
	}
	return nil
}
