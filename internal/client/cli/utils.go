package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adminsuite/tenantconsole/internal/client/models"
	"github.com/adminsuite/tenantconsole/internal/common"
)

// idArg takes the record id from the command arguments or, when absent,
// prompts for it.
func (a *App) idArg(args []string, prompt string) (int64, error) {
	text := ""
	if len(args) > 0 {
		text = args[0]
	} else {
		var err error
		text, err = getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", common.ErrorValidation, text)
	}
	return id, nil
}

// readAttachment loads a local file for upload, guessing the content type
// from the extension.
func readAttachment(path string) (*models.FileAttachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &models.FileAttachment{
		Name:        filepath.Base(path),
		ContentType: ct,
		Data:        data,
	}, nil
}
