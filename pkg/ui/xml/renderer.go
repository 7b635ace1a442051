// Package xml renders results as XML reports using github.com/beevik/etree.
package xml

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/arthur-debert/frece/pkg/catalog"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/beevik/etree"
)

// Renderer writes one XML document per call.
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as an XML document
func (r *Renderer) RenderResult(result interface{}) error {
	doc := newDocument()
	switch v := result.(type) {
	case *types.ScanResult:
		scanElement(doc, v)
	case *types.RecoveryOutcome:
		recoveryElement(doc, v)
	case types.CatalogSummary:
		catalogElement(doc, &v)
	case *types.CatalogSummary:
		catalogElement(doc, v)
	case []types.Alias:
		root := doc.CreateElement("aliases")
		for _, a := range v {
			el := root.CreateElement("alias")
			el.CreateAttr("name", a.Name)
			el.SetText(a.Target)
		}
	case *types.ToolRun:
		el := doc.CreateElement("tool")
		el.CreateAttr("name", v.Name)
		el.CreateAttr("path", v.Path)
		el.CreateAttr("exit-code", strconv.Itoa(v.ExitCode))
		el.CreateAttr("duration", v.Duration.String())
		for _, arg := range v.Args {
			el.CreateElement("arg").SetText(arg)
		}
	default:
		doc.CreateElement("result").SetText(fmt.Sprintf("%+v", result))
	}
	return r.write(doc)
}

// RenderError renders an error as an XML document
func (r *Renderer) RenderError(err error) error {
	doc := newDocument()
	el := doc.CreateElement("error")
	el.CreateAttr("code", string(errors.GetErrorCode(err)))
	el.CreateElement("message").SetText(err.Error())
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		detail := el.CreateElement("detail")
		detail.CreateAttr("key", k)
		detail.SetText(fmt.Sprint(details[k]))
	}
	return r.write(doc)
}

// RenderMessage renders a simple message as an XML document
func (r *Renderer) RenderMessage(msg string) error {
	doc := newDocument()
	doc.CreateElement("message").SetText(msg)
	return r.write(doc)
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}

func scanElement(doc *etree.Document, res *types.ScanResult) {
	root := doc.CreateElement("scan")
	root.CreateAttr("root", res.Root.Path)
	if !res.Filter.IsZero() {
		root.CreateAttr("extension", res.Filter.Extension())
	}
	if !res.Name.IsZero() {
		root.CreateAttr("name", res.Name.Name())
	}
	root.CreateAttr("files", strconv.Itoa(len(res.Records)))
	root.CreateAttr("directories", strconv.Itoa(res.Directories))

	for _, rec := range res.Records {
		el := root.CreateElement("file")
		el.CreateAttr("path", rec.Path)
		el.CreateAttr("rel", rec.RelPath)
		el.CreateAttr("extension", rec.Extension)
		el.CreateAttr("size", strconv.FormatInt(rec.Size, 10))
		el.CreateAttr("modified", rec.ModTime.UTC().Format(time.RFC3339))
		if rec.IsSymlink {
			el.CreateAttr("symlink", "true")
		}
	}
	warningElements(root, res.Warnings)
}

func recoveryElement(doc *etree.Document, o *types.RecoveryOutcome) {
	root := doc.CreateElement("recovery")
	root.CreateAttr("run", o.RunID)
	root.CreateAttr("source", o.Source)
	root.CreateAttr("destination", o.Destination)
	root.CreateAttr("policy", string(o.Policy))
	if o.DryRun {
		root.CreateAttr("dry-run", "true")
	}
	if o.Cancelled {
		root.CreateAttr("cancelled", "true")
	}

	summary := root.CreateElement("summary")
	summary.CreateAttr("attempted", strconv.Itoa(o.Attempted))
	summary.CreateAttr("succeeded", strconv.Itoa(o.Succeeded))
	summary.CreateAttr("skipped", strconv.Itoa(o.Skipped))
	summary.CreateAttr("failed", strconv.Itoa(o.Failed))
	summary.CreateAttr("bytes", strconv.FormatInt(o.Bytes, 10))
	summary.CreateAttr("duration", o.Duration.String())

	for _, f := range o.Files {
		el := root.CreateElement("file")
		el.CreateAttr("status", string(f.Status))
		el.CreateAttr("source", f.Source)
		if f.Destination != "" {
			el.CreateAttr("destination", f.Destination)
		}
		if f.Status == types.StatusFailed {
			el.CreateAttr("code", string(f.Code))
			el.SetText(f.Err)
		}
	}
}

func catalogElement(doc *etree.Document, c *types.CatalogSummary) {
	root := doc.CreateElement("catalog")
	root.CreateAttr("root", c.Root)
	root.CreateAttr("files", strconv.Itoa(c.FileCount))
	root.CreateAttr("directories", strconv.Itoa(c.DirectoryCount))

	exts := root.CreateElement("extensions")
	for _, ec := range catalog.SortedExtensions(c.ExtensionCounts) {
		el := exts.CreateElement("extension")
		el.CreateAttr("name", ec.Extension)
		el.CreateAttr("count", strconv.Itoa(ec.Count))
	}
	files := root.CreateElement("files")
	for _, f := range c.Files {
		el := files.CreateElement("file")
		el.CreateAttr("rel", f.RelPath)
		el.CreateAttr("extension", f.Extension)
	}
	warningElements(root, c.Warnings)
}

func warningElements(parent *etree.Element, warnings []types.ScanWarning) {
	for _, w := range warnings {
		el := parent.CreateElement("warning")
		el.CreateAttr("path", w.Path)
		el.CreateAttr("code", string(w.Code))
		el.SetText(w.Err)
	}
}
