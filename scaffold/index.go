package scaffold

import (
	"bytes"
	"errors"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/rendau/rester/adapters/logger"
	"github.com/rendau/rester/resterErrs"
)

const ErrMissingArgs = resterErrs.Err("missing_args")

var identifierRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

type OptionsSt struct {
	AppPath   string
	Group     string
	ApiName   string
	BaseClass string
}

type ResultSt struct {
	Dir        string
	DirCreated bool
	Created    []string
	Skipped    []string
}

type St struct {
	lg logger.Lite
}

func New(lg logger.Lite) *St {
	return &St{lg: lg}
}

// Create writes the definition files of one api into the group directory.
// Existing files are never overwritten.
func (s *St) Create(opts OptionsSt) (*ResultSt, error) {
	if opts.Group == "" || opts.ApiName == "" {
		return nil, ErrMissingArgs
	}

	if opts.BaseClass == "" {
		opts.BaseClass = BaseClassYes
	}
	if opts.BaseClass != BaseClassYes && opts.BaseClass != BaseClassNo {
		return nil, resterErrs.ErrWithDesc{Err: ErrMissingArgs, Desc: "base-class must be yes or no"}
	}

	for _, v := range []string{opts.Group, opts.ApiName} {
		if !identifierRegexp.MatchString(v) {
			return nil, resterErrs.ErrWithDesc{Err: resterErrs.BadIdentifier, Desc: v}
		}
	}

	if opts.AppPath == "" {
		opts.AppPath = "."
	}

	result := &ResultSt{
		Dir: filepath.Join(opts.AppPath, DefaultDir, strings.ToLower(opts.Group)),
	}

	_, err := os.Stat(result.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = os.MkdirAll(result.Dir, 0o755); err != nil {
			s.lg.Errorw("Fail to create directory", err, "dir", result.Dir)
			return nil, err
		}
		result.DirCreated = true
		s.lg.Infow("Created directory", "dir", result.Dir)
	case err != nil:
		return nil, err
	default:
		s.lg.Infow("Directory already exists", "dir", result.Dir)
	}

	data := tplDataSt{
		Package:    strings.ToLower(opts.Group),
		Name:       exported(opts.ApiName),
		BaseName:   exported(opts.Group) + "Base",
		ImportPath: resterImportPath,
	}

	if opts.BaseClass == BaseClassNo {
		err = s.writeFile(result, data.Name, standaloneTpl, data)
		if err != nil {
			return nil, err
		}

		return result, nil
	}

	if err = s.writeFile(result, data.Name, leafTpl, data); err != nil {
		return nil, err
	}

	err = s.writeFile(result, data.BaseName, baseTpl, tplDataSt{
		Package: data.Package,
		Name:    data.BaseName,
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *St) writeFile(result *ResultSt, typeName string, tpl *template.Template, data tplDataSt) error {
	filePath := filepath.Join(result.Dir, FileName(typeName))

	if _, err := os.Stat(filePath); err == nil {
		result.Skipped = append(result.Skipped, filePath)
		return nil
	}

	buf := &bytes.Buffer{}

	if err := tpl.Execute(buf, data); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}

	if err = os.WriteFile(filePath, src, 0o644); err != nil {
		s.lg.Errorw("Fail to write file", err, "path", filePath)
		return err
	}

	result.Created = append(result.Created, filePath)

	s.lg.Infow("Definition created", "type", typeName, "path", filePath)

	return nil
}

// FileName turns a type name into a snake-case go file name: InvoiceList -> invoice_list.go.
func FileName(typeName string) string {
	sb := strings.Builder{}

	runes := []rune(typeName)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) && runes[i-1] != '_' {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}

	return sb.String() + ".go"
}

func exported(v string) string {
	runes := []rune(v)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
