package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/popxauth/internal/models"
)

// defaultBio is shown when the account has no bio yet. Purely cosmetic;
// it is never written back to the account.
const defaultBio = "(no bio yet)"

var errUnknownField = errors.New("unknown field")

// Profile prints the public fields of the current session.
func (a *App) Profile(ctx context.Context) error {
	cur := a.sessions.Current()
	if cur == nil {
		printlnFn("Not logged in")
		return nil
	}

	bio := cur.Bio
	if bio == "" {
		bio = defaultBio
	}

	printlnFn("Full name:    " + cur.FullName)
	printlnFn("Email:        " + cur.Email)
	printlnFn("Phone:        " + cur.PhoneNumber)
	printlnFn("Company:      " + cur.CompanyName)
	printlnFn("Agency:       " + strconv.FormatBool(cur.IsAgency))
	printlnFn("Image:        " + cur.ProfileImage)
	printlnFn("Bio:          " + bio)
	return nil
}

// Update collects "field=value" lines and applies them as a single partial
// profile update.
func (a *App) Update(ctx context.Context) error {
	lines, err := GetFieldLines(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	patch, err := parsePatch(lines)
	if err != nil {
		printlnFn("Invalid update:", err.Error())
		return err
	}
	if patch.IsZero() {
		printlnFn("Nothing to update")
		return nil
	}

	sess, err := a.sessions.UpdateProfile(ctx, patch)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Profile updated for %s", sess.Email))
	return nil
}

// UpdateImage prompts for an image reference (URL or data URI) and sets it
// as the profile image.
func (a *App) UpdateImage(ctx context.Context) error {
	ref, err := getSimpleText(a.reader, "Image URL or data URI", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.sessions.UpdateProfileImage(ctx, ref); err != nil {
		printlnFn("Image update failed:", err.Error())
		return err
	}

	printlnFn("Profile image updated")
	return nil
}

// parsePatch turns "field=value" lines into a models.Patch. Field names
// match the JSON names of the session record. isAgency takes true/false.
func parsePatch(lines []string) (models.Patch, error) {
	var p models.Patch
	for _, line := range lines {
		name, value, found := strings.Cut(line, "=")
		if !found {
			return models.Patch{}, fmt.Errorf("%q: updates must be field=value", line)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		switch name {
		case "fullName":
			p.FullName = models.String(value)
		case "email":
			p.Email = models.String(value)
		case "phoneNumber":
			p.PhoneNumber = models.String(value)
		case "companyName":
			p.CompanyName = models.String(value)
		case "profileImage":
			p.ProfileImage = models.String(value)
		case "bio":
			p.Bio = models.String(value)
		case "isAgency":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return models.Patch{}, fmt.Errorf("isAgency: %q is not a boolean", value)
			}
			p.IsAgency = models.Bool(b)
		default:
			return models.Patch{}, fmt.Errorf("%w: %q", errUnknownField, name)
		}
	}
	return p, nil
}
