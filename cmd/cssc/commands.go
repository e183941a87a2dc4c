package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	css "github.com/benbjohnson/cssengine"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/htmlnode"
	"github.com/benbjohnson/cssengine/internal/server"
	"github.com/benbjohnson/cssengine/parser"
	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/selector"
	"github.com/benbjohnson/cssengine/token"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check stylesheets for errors",
		Long:  `Parse each stylesheet and report every invalid rule, selector and declaration. Reads stdin when no file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			var n int
			for _, path := range args {
				name, src, err := readInput(cmd, path)
				if err != nil {
					return err
				}

				var errs diag.ErrorList
				sheet, err := css.Compile(src, a.cfg.SelectorMode())
				if err != nil {
					if errs, err = asList(err); err != nil {
						return fmt.Errorf("compiling %s: %w", name, err)
					}
				} else {
					errs = sheet.Errors
					a.logger.Debug("checked stylesheet", "file", name, "rules", len(sheet.Rules), "errors", len(errs))
				}

				if len(errs) == 0 {
					continue
				}
				n += len(errs)
				if err := report(cmd.ErrOrStderr(), name, src, errs); err != nil {
					return err
				}
			}

			if n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s)\n", n)
				return errFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (a *app) newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a stylesheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}

			tokens, err := scanner.Tokenize(src)
			w := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Position(), token.Name(tok), tok.String())
			}
			if err != nil {
				errs, err := asList(err)
				if err != nil {
					return err
				}
				if err := report(cmd.ErrOrStderr(), name, src, errs); err != nil {
					return err
				}
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) newFmtCmd() *cobra.Command {
	var write bool
	var indent string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty print a stylesheet",
		Long:  `Print a stylesheet with one declaration per line. Invalid rules and declarations are reported and dropped.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := firstArg(args)
			if write && isStdin(path) {
				return errors.New("--write requires a file")
			}

			name, src, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			ss, errs, err := parser.ParseStyleSheet(scanner.New(src), a.cfg.SelectorMode())
			if err != nil {
				fatal, ferr := asList(err)
				if ferr != nil {
					return ferr
				}
				if err := report(cmd.ErrOrStderr(), name, src, append(errs, fatal...)); err != nil {
					return err
				}
				return errFailed
			}
			if len(errs) > 0 {
				if err := report(cmd.ErrOrStderr(), name, src, errs); err != nil {
					return err
				}
			}

			var buf strings.Builder
			p := css.Printer{Indent: indent}
			if err := p.Print(&buf, ss); err != nil {
				return err
			}

			if write {
				if err := os.WriteFile(path, []byte(buf.String()), 0666); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				a.logger.Debug("formatted stylesheet", "file", path)
				return nil
			}
			_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")
	cmd.Flags().StringVar(&indent, "indent", css.DefaultIndent, "Indentation for nested blocks")
	return cmd
}

func (a *app) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <selector> [file]",
		Short: "Print the elements of an HTML document matched by a selector",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, errs, err := selector.Parse(args[0], a.cfg.SelectorMode())
			if err != nil {
				fatal, ferr := asList(err)
				if ferr != nil {
					return ferr
				}
				errs = append(errs, fatal...)
			}
			if len(errs) > 0 {
				if rerr := report(cmd.ErrOrStderr(), "<selector>", args[0], errs); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return errFailed
			}

			_, src, err := readInput(cmd, argAt(args, 1))
			if err != nil {
				return err
			}
			root, err := htmlnode.Parse(strings.NewReader(src))
			if err != nil {
				return fmt.Errorf("parsing html: %w", err)
			}

			for _, e := range htmlnode.Select(root, l) {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}

func (a *app) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <stylesheet> [file]",
		Short: "Print the computed style of each element of an HTML document",
		Long:  `Apply the document's embedded <style> sheets, then the given stylesheet, then inline style attributes to every element.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isStdin(args[0]) && isStdin(argAt(args, 1)) {
				return errors.New("stylesheet and document cannot both be read from stdin")
			}

			sheetName, sheetSrc, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			_, doc, err := readInput(cmd, argAt(args, 1))
			if err != nil {
				return err
			}

			root, err := htmlnode.Parse(strings.NewReader(doc))
			if err != nil {
				return fmt.Errorf("parsing html: %w", err)
			}

			src := strings.Join(append(htmlnode.StyleSheets(root), sheetSrc), "\n")
			sheet, err := css.Compile(src, a.cfg.SelectorMode())
			if err != nil {
				errs, ferr := asList(err)
				if ferr != nil {
					return ferr
				}
				if err := report(cmd.ErrOrStderr(), sheetName, src, errs); err != nil {
					return err
				}
				return errFailed
			}
			if len(sheet.Errors) > 0 {
				if err := report(cmd.ErrOrStderr(), sheetName, src, sheet.Errors); err != nil {
					return err
				}
			}

			computed, errs, err := htmlnode.Apply(root, sheet, a.cfg.SelectorMode())
			if err != nil {
				return err
			}
			for _, e := range errs {
				a.logger.Warn("invalid inline style", "error", e)
			}

			for _, c := range computed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s { %s }\n", c.Element, styleString(c.Style))
			}
			return nil
		},
	}
}

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return server.New(a.cfg, a.logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&a.cfg.Server.Addr, "addr", a.cfg.Server.Addr, "Address to listen on")
	cmd.Flags().Int64Var(&a.cfg.Server.MaxBody, "max-body", a.cfg.Server.MaxBody, "Largest request body in bytes")
	return cmd
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) (name, src string, err error) {
	if isStdin(path) {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return path, string(b), nil
}

func isStdin(path string) bool { return path == "" || path == "-" }

// asList returns a parse error as a single item error list. Returns err itself
// if it is not a parse error.
func asList(err error) (diag.ErrorList, error) {
	var e *diag.Error
	if !errors.As(err, &e) {
		return nil, err
	}
	return diag.ErrorList{e}, nil
}

// report renders errs against src under a file name heading.
func report(w io.Writer, name, src string, errs diag.ErrorList) error {
	if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
		return err
	}
	return diag.RenderAll(w, src, errs)
}

func styleString(st *property.Style) string {
	if st.Len() == 0 {
		return ""
	}
	return st.String() + ";"
}

func firstArg(args []string) string { return argAt(args, 0) }

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
