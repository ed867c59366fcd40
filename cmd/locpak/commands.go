package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/locpak/locpak/codec"
	"github.com/locpak/locpak/container"
	"github.com/locpak/locpak/csvfmt"
	"github.com/locpak/locpak/errs"
	"github.com/locpak/locpak/format"
	"github.com/locpak/locpak/inicfg"
	"github.com/locpak/locpak/namemap"
)

const (
	version     = "1.0.0"
	defaultIni  = "loc.ini"
	defaultMap  = "names.map"
	defaultBin  = "out.bin"
	defaultPlat = "pc"
)

func arg(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}

	return fallback
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print name/version/license",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("locpak " + version + " (MIT)")

			return nil
		},
	}
}

func (a *app) exitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exit",
		Short: "terminate successfully immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errExit
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "reset the stringtable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.table.Clear()

			return nil
		},
	}
}

func (a *app) readIniCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-ini [path]",
		Short: "parse prefix=.../csv=... lines and register their sources",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := arg(args, 0, defaultIni)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read-ini %s: %w", path, err)
			}

			entries := inicfg.Parse(string(data))
			a.log.Printf("read-ini %s: %d sources", path, len(entries))

			for _, e := range entries {
				idx := a.table.AddSource(e.CSVPath, e.Prefix)
				if info, err := os.Stat(e.CSVPath); err == nil {
					a.table.Source(idx).ModifiedTime = info.ModTime()
				}
			}

			return nil
		},
	}
}

func (a *app) readCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-csv [utf_flag]",
		Short: "read every registered source CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utfFlag := arg(args, 0, "0") == "1"

			for _, src := range a.table.Sources() {
				if err := a.readOneCSV(src.CSVPath, src.Prefix, utfFlag); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) readOneCSV(path, prefix string, utfFlag bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read-csv %s: %w", path, err)
	}

	records := csvfmt.ParseRecords(csvfmt.Decode(data, utfFlag))
	if len(records) == 0 {
		return nil
	}

	a.log.Printf("read-csv %s: %d rows", path, len(records)-1)

	header := records[0]

	colIdxs := make([]int, len(header))
	for j := 1; j < len(header); j++ {
		colIdxs[j] = a.table.AddColumn(header[j])
	}

	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) == 0 {
			continue
		}

		key, name := resolveIdentifier(prefix, row[0])
		if name != "" {
			if err := a.table.AddName(key, name); err != nil {
				return &errs.LineError{Reason: err, Source: path, Line: i + 1}
			}
		} else {
			a.table.EnsureKey(key)
		}

		for j := 1; j < len(row) && j < len(header); j++ {
			a.table.SetCell(colIdxs[j], key, row[j])
		}
	}

	return nil
}

func (a *app) saveMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-map [path]",
		Short: "write prefix:id|hashhex lines for every named key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := arg(args, 0, defaultMap)

			var entries []namemap.Entry

			for _, key := range a.table.KeysDescending() {
				name, ok := a.table.Name(key)
				if !ok || name == "" {
					continue
				}

				entries = append(entries, namemap.Entry{Name: name, Hash: key})
			}

			if err := os.WriteFile(path, []byte(namemap.Format(entries)), 0o644); err != nil {
				return fmt.Errorf("save-map %s: %w", path, err)
			}

			return nil
		},
	}
}

func (a *app) readMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-map [path]",
		Short: "read hash->name map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := arg(args, 0, defaultMap)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read-map %s: %w", path, err)
			}

			entries, err := namemap.Parse(path, string(data))
			if err != nil {
				return err
			}

			for i, e := range entries {
				if err := a.table.AddName(e.Hash, e.Name); err != nil {
					return &errs.LineError{Reason: err, Source: path, Line: i + 1}
				}
			}

			return nil
		},
	}
}

func (a *app) saveBinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-bin [plat] [ver] [path] [level] [filter]",
		Short: "pack the stringtable and write the binary container",
		Args:  cobra.MaximumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			plat, err := format.ParsePlatform(arg(args, 0, defaultPlat))
			if err != nil {
				return err
			}

			level, err := strconv.Atoi(arg(args, 3, "1"))
			if err != nil {
				return errs.ErrInvalidLevel
			}

			strategy, err := format.LevelToStrategy(level)
			if err != nil {
				return err
			}

			opts := []saveBinOption{withPlatform(plat), withPath(arg(args, 2, defaultBin)), withStrategy(strategy)}
			if v := arg(args, 1, ""); v != "" {
				opts = append(opts, withVersion(v[0]))
			}

			cfg, err := newSaveBinConfig(opts...)
			if err != nil {
				return err
			}

			// args[4] ("filter") is a legacy argument, accepted and ignored
			// per spec.md S6.1.

			keysDesc := a.table.KeysDescending()

			colNames := make([]string, 0, len(a.table.Columns()))
			colData := make([]*codec.SymbolTable, 0, len(a.table.Columns()))

			for _, col := range a.table.Columns() {
				st, err := codec.Encode(keysDesc, col.Rows, cfg.strategy)
				if err != nil {
					return fmt.Errorf("save-bin: column %s: %w", col.Name, err)
				}

				colNames = append(colNames, col.Name)
				colData = append(colData, st)
			}

			sources := make([]container.SourceEntry, 0, len(a.table.Sources()))
			for _, src := range a.table.Sources() {
				sources = append(sources, container.SourceEntry{CSVPath: src.CSVPath, ModifiedTime: src.ModifiedTime})
			}

			m := &container.Model{
				BigEndian:   cfg.platform.BigEndian(),
				Version:     cfg.version,
				Sources:     sources,
				ColumnNames: colNames,
				ColumnData:  colData,
				KeysDesc:    keysDesc,
			}

			data, err := container.Write(m)
			if err != nil {
				return fmt.Errorf("save-bin %s: %w", cfg.path, err)
			}

			if err := os.WriteFile(cfg.path, data, 0o644); err != nil {
				return fmt.Errorf("save-bin %s: %w", cfg.path, err)
			}

			a.log.Printf("save-bin %s: %s, %d bytes, %d columns, %d rows", cfg.path, cfg.strategy, len(data), len(colNames), len(keysDesc))

			return nil
		},
	}
}

func (a *app) readBinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-bin [path]",
		Short: "parse a binary string table into the model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := arg(args, 0, defaultBin)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read-bin %s: %w", path, err)
			}

			m, err := container.Read(data)
			if err != nil {
				return fmt.Errorf("read-bin %s: %w", path, err)
			}

			a.log.Printf("read-bin %s: version %q, %d columns, %d rows", path, m.Version, len(m.ColumnNames), len(m.KeysDesc))

			for _, key := range m.KeysDesc {
				a.table.EnsureKey(key)
			}

			for _, src := range m.Sources {
				idx := a.table.AddSource(src.CSVPath, "")
				a.table.Source(idx).ModifiedTime = src.ModifiedTime
			}

			for i, name := range m.ColumnNames {
				colIdx := a.table.AddColumn(name)

				rows, err := codec.Decode(m.ColumnData[i], m.KeysDesc)
				if err != nil {
					return fmt.Errorf("read-bin %s: %w", path, err)
				}

				for key, text := range rows {
					a.table.SetCell(colIdx, key, text)
				}
			}

			return nil
		},
	}
}

func (a *app) saveCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-csv",
		Short: "write every source's CSV from the merged model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := a.table.Columns()
			keys := a.table.KeysDescending()

			header := make(csvfmt.Record, 0, len(cols)+1)
			header = append(header, "id")

			for _, col := range cols {
				header = append(header, col.Name)
			}

			records := make([]csvfmt.Record, 0, len(keys)+1)
			records = append(records, header)

			for _, key := range keys {
				row := make(csvfmt.Record, 0, len(cols)+1)
				row = append(row, identifierCell(a.table.Name, key))

				for _, col := range cols {
					row = append(row, col.Rows[key])
				}

				records = append(records, row)
			}

			text := csvfmt.FormatRecords(records)

			for _, src := range a.table.Sources() {
				if err := os.WriteFile(src.CSVPath, csvfmt.Encode(text), 0o644); err != nil {
					return fmt.Errorf("save-csv %s: %w", src.CSVPath, err)
				}
			}

			return nil
		},
	}
}

func identifierCell(lookup func(uint32) (string, bool), key uint32) string {
	if name, ok := lookup(key); ok && name != "" {
		return name
	}

	return fmt.Sprintf("%08x", key)
}
