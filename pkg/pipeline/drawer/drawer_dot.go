package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-linksim/pkg/pipeline/measure"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

// DOTDrawer is a drawer that creates a DOT file with the pipeline graph.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed(), graph.Acyclic()),
	}
}

// AddStage adds a stage to the pipeline graph. Adding a stage twice is a no-op.
func (d *DOTDrawer) AddStage(name string) error {
	err := d.graph.AddVertex(name, graph.VertexAttribute("shape", "box"))
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between parent and children stages. Adding a link twice is a no-op.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// Draw creates a DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = d.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

// Render writes the DOT description of the graph to wrt.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	return dot(d.graph, wrt, GraphAttribute("rankdir", "LR"))
}

// SetTotalTime sets the total time for the stage.
func (d *DOTDrawer) SetTotalTime(stageName string, startTime time.Time) error {
	_, properties, err := d.graph.VertexWithProperties(stageName)
	if err != nil {
		return errors.Wrap(err, "unable to get end vertex properties")
	}

	properties.Attributes["xlabel"] = time.Since(startTime).String()

	return nil
}

const maxRGB = 240

// AddMeasure labels every stage with its average duration and colours it from blue, the fastest stage,
// to red, the slowest one. The end of the graph is labelled with the total duration of the run.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	var fastest, slowest time.Duration
	for name, mt := range metrics {
		avg := mt.AVGDuration()
		if isBoundary(name) || avg == 0 {
			continue
		}
		if fastest == 0 || avg < fastest {
			fastest = avg
		}
		slowest = max(slowest, avg)
	}

	for name, mt := range metrics {
		_, properties, err := d.graph.VertexWithProperties(name)
		if errors.Is(err, graph.ErrVertexNotFound) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		if total := mt.GetTotalDuration(); total > 0 {
			properties.Attributes["xlabel"] = "end: " + total.String()
			continue
		}

		avg := mt.AVGDuration()
		if isBoundary(name) || avg == 0 {
			continue
		}
		colour, err := heat(avg, fastest, slowest)
		if err != nil {
			return err
		}
		properties.Attributes["xlabel"] = avg.String()
		properties.Attributes["color"] = colour
	}

	return nil
}

func isBoundary(name string) bool {
	return name == model.StartStage.Name || name == model.EndStage.Name
}

// heat returns the hexadecimal colour of elapsed on a blue to red scale going from fastest to slowest.
func heat(elapsed, fastest, slowest time.Duration) (string, error) {
	fraction := 1.0
	if slowest > fastest {
		fraction = float64(elapsed-fastest) / float64(slowest-fastest)
	}

	colour, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB*(1-fraction))) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(gra graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(gra, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [DOT] method.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT lists the stages in pipeline order so the output does not depend on map iteration.
func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	order, err := graph.TopologicalSort(gra)
	if err != nil {
		return desc, errors.Wrap(err, "unable to sort stages")
	}

	for _, vertex := range order {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceAttributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for adjacency := range adjacencyMap[vertex] {
			targets = append(targets, adjacency)
		}
		sort.Strings(targets)

		for _, adjacency := range targets {
			edge := adjacencyMap[vertex][adjacency]
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
