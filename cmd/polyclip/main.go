package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/polyclip"
	"github.com/tdewolff/polyclip/svg"
	"gonum.org/v1/plot/vg"
)

type Clip struct {
	Steps   bool   `desc:"Print the per-edge step trace"`
	Output  string `short:"o" desc:"Output SVG file with the step trace tiled in playback order"`
	Plot    string `desc:"Output plot file of subject, clip and result (png, svg, pdf)"`
	Subject string `index:"0" desc:"Subject polygon as x,y coordinate pairs"`
	Clip    string `index:"1" desc:"Convex clipping polygon as x,y coordinate pairs"`
}

func main() {
	root := argp.NewCmd(&Clip{}, "Convex polygon clipping with a replayable step trace by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Clip) Run() error {
	if cmd.Subject == "" || cmd.Clip == "" {
		return argp.ShowUsage
	}

	subject, err := polyclip.ParsePolygon(cmd.Subject)
	if err != nil {
		return fmt.Errorf("subject polygon: %w", err)
	}
	clip, err := polyclip.ParsePolygon(cmd.Clip)
	if err != nil {
		return fmt.Errorf("clipping polygon: %w", err)
	}
	if !clip.Empty() && !clip.IsConvex() {
		fmt.Fprintln(os.Stderr, "warning: clipping polygon is not convex, result may be wrong")
	}

	result, ledger := polyclip.Clip(subject, clip)
	if result.Empty() {
		fmt.Println("empty result")
	} else {
		fmt.Println(result)
	}

	if cmd.Steps {
		for i, step := range ledger.Steps() {
			fmt.Printf("step %d: clip edge %v - %v\n", i+1, step.Edge.Start, step.Edge.End)
			for _, action := range step.Actions {
				fmt.Printf("  %-9s %-16v %s\n", action.Kind, action.Vertex, action.Reason)
			}
			if step.Output.Empty() {
				fmt.Println("  output degenerate, clipping stopped")
			} else {
				fmt.Printf("  output: %v\n", step.Output)
			}
		}
	}

	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := svg.Writer(f, ledger.Steps()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if cmd.Plot != "" {
		p, err := polyclip.ResultPlot(subject, clip, result)
		if err != nil {
			return err
		}
		if err := p.Save(15*vg.Centimeter, 15*vg.Centimeter, cmd.Plot); err != nil {
			return err
		}
	}
	return nil
}
