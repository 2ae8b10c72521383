package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/itnewcomer/Memento/internal/client/render"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/cryptox"
	"github.com/itnewcomer/Memento/internal/filex"
	"github.com/itnewcomer/Memento/internal/services"
)

// s3Prefix marks a restore source that lives in the backup bucket.
const s3Prefix = "s3:"

func formatArgs(args []string) (path string, f services.Format, err error) {
	if len(args) == 0 {
		return "", "", errors.New("usage: backup|restore <file> [json|yaml]")
	}
	path = args[0]
	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	f, err = services.ParseFormat(name, strings.TrimPrefix(path, s3Prefix))
	return path, f, err
}

// Backup writes the whole journal to a file. An optional passphrase seals
// it; when a bucket is configured the same bytes are uploaded too.
func (a *App) Backup(ctx context.Context, args []string) error {
	path, f, err := formatArgs(args)
	if err != nil {
		return err
	}

	archive, err := a.backup.Export(ctx)
	if err != nil {
		return err
	}
	pass, err := GetPassword("Passphrase (empty for none)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pass)

	data, err := services.Encode(archive, f, pass)
	if err != nil {
		return err
	}
	if err := filex.WritePrivate(path, data); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	a.println(render.Good.Render(fmt.Sprintf("backed up %d records to %s", len(archive.Records), path)))

	if !a.store.Enabled() {
		return nil
	}
	key := services.ArchiveKey(archive.ExportedAt, f)
	if err := a.store.Upload(ctx, key, data); err != nil {
		return err
	}
	a.println(render.Good.Render("uploaded to " + s3Prefix + key))
	return nil
}

// Restore reads a backup from a file or, with the s3: prefix, from the
// bucket, and merges it into the journal.
func (a *App) Restore(ctx context.Context, args []string) error {
	path, f, err := formatArgs(args)
	if err != nil {
		return err
	}

	var data []byte
	if key, ok := strings.CutPrefix(path, s3Prefix); ok {
		data, err = a.store.Download(ctx, key)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var pass []byte
	if cryptox.IsSealed(data) {
		if pass, err = GetPassword("Passphrase", a.out); err != nil {
			return err
		}
		defer common.WipeByteArray(pass)
	}

	archive, err := services.Decode(data, f, pass)
	if err != nil {
		return err
	}
	if err := a.backup.Restore(ctx, archive); err != nil {
		return err
	}
	a.println(render.Good.Render(fmt.Sprintf("restored %d records and %d goals", len(archive.Records), len(archive.Goals))))
	return nil
}
