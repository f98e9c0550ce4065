package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

func userColumns() []column[models.User] {
	return []column[models.User]{
		{Name: "id", String: func(u models.User) string { return strconv.FormatInt(u.ID, 10) },
			Numeric: func(u models.User) float64 { return float64(u.ID) }},
		{Name: "username", String: func(u models.User) string { return u.Username }, Search: true},
		{Name: "name", String: func(u models.User) string { return u.FullName }, Search: true},
		{Name: "email", String: func(u models.User) string { return u.Email }, Search: true},
		{Name: "role", String: func(u models.User) string { return u.Role }, Search: true},
		{Name: "active", String: func(u models.User) string { return strconv.FormatBool(u.IsActive) }},
	}
}

// Users runs the managed accounts screen.
func (a *App) Users(ctx context.Context) error {
	page := newListPage("users", userColumns(), a.users.GetAll)
	page.reload(ctx)
	page.render(a.out)

	for {
		cmd, args, ok := a.readCommand("users")
		if !ok {
			return nil
		}
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprintln(a.out, "Commands: list, search <term>, sort <column>, add, edit <id>, toggle <id>, delete <id>, refresh, retry, back")
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
			_ = a.addUser(ctx, page)
		case "edit":
			_ = a.editUser(ctx, page, args)
		case "toggle":
			_ = a.toggleUser(ctx, page, args)
		case "delete":
			_ = a.deleteUser(ctx, page, args)
		case "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) userDraft(current models.User, withPassword bool) (models.NewUser, error) {
	var d models.NewUser
	var err error

	if d.Username, err = GetText(a.reader, "Username", current.Username, a.out); err != nil {
		return d, err
	}
	if withPassword {
		pw, err := getPassword(a.out)
		if err != nil {
			return d, err
		}
		d.Password = string(pw)
		d.ConfirmPassword = d.Password
	}
	if d.FullName, err = GetText(a.reader, "Full name", current.FullName, a.out); err != nil {
		return d, err
	}
	if d.Email, err = GetText(a.reader, "Email", current.Email, a.out); err != nil {
		return d, err
	}
	if d.Phone, err = GetText(a.reader, "Phone", current.Phone, a.out); err != nil {
		return d, err
	}
	if d.Gender, err = GetText(a.reader, "Gender", current.Gender, a.out); err != nil {
		return d, err
	}
	if d.Role, err = GetText(a.reader, "Role", current.Role, a.out); err != nil {
		return d, err
	}
	if d.Remarks, err = GetText(a.reader, "Remarks", current.Remarks, a.out); err != nil {
		return d, err
	}
	if d.IsActive, err = GetBool(a.reader, "Active", current.IsActive, a.out); err != nil {
		return d, err
	}

	return d, nil
}

func (a *App) addUser(ctx context.Context, page *listPage[models.User]) error {
	draft, err := a.userDraft(models.User{IsActive: true}, true)
	if err != nil {
		return err
	}
	if draft.Username == "" || draft.Password == "" {
		fmt.Fprintln(a.out, "Username and password are required.")
		return nil
	}

	created, err := a.users.Create(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Created user %d.\n", created.ID)
	page.reload(ctx)
	page.render(a.out)
	return nil
}

func (a *App) editUser(ctx context.Context, page *listPage[models.User], args []string) error {
	id, err := a.idArg(args, "Enter user id to edit")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	var current *models.User
	for i := range page.items {
		if page.items[i].ID == id {
			current = &page.items[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintln(a.out, "User not found in the current list.")
		return nil
	}

	draft, err := a.userDraft(*current, false)
	if err != nil {
		return err
	}

	if _, err := a.users.Update(ctx, id, draft); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Updated.")
	page.reload(ctx)
	page.render(a.out)
	return nil
}

func (a *App) toggleUser(ctx context.Context, page *listPage[models.User], args []string) error {
	id, err := a.idArg(args, "Enter user id to toggle")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	updated, err := a.users.ToggleStatus(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	state := "disabled"
	if updated.IsActive {
		state = "enabled"
	}
	fmt.Fprintf(a.out, "User %s is now %s.\n", updated.Username, state)
	page.reload(ctx)
	return nil
}

func (a *App) deleteUser(ctx context.Context, page *listPage[models.User], args []string) error {
	id, err := a.idArg(args, "Enter user id to delete")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	yes, err := Confirm(a.reader, fmt.Sprintf("Delete user %d", id), a.out)
	if err != nil || !yes {
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Deleted.")
	page.reload(ctx)
	return nil
}
