// Package gridtesting plans risk-budgeted corridors across a mined field.
//
// A 150×40 field is generated with circular obstacles and a mix of visible
// and hidden mines. For every tolerance level (how many visible mines' danger
// zones a route may cross) the planner scans corridor widths and picks the
// route that best trades width against length and risk.
//
// Layout:
//
//	terrain/    grid, tile kinds, points and mine records
//	mapgen/     seeded map generator (obstacles with halos, mines)
//	distfield/  multi-source BFS distance and ownership (discrete Voronoi)
//	scenario/   one map bundled with its visible and all-mines fields
//	corridor/   A* over (cell, crossed-mine set) states under a risk budget
//	optimizer/  width × tolerance scan and scoring
//	render/     per-cell display codes and summary statistics
//	planner/    Generate / Solve / RenderData with logging and tracing
//	config/     YAML settings and logger construction
//	cmd/corridor  command-line front end emitting render data as JSON
//
// Quick start:
//
//	p, _ := planner.New(planner.WithSeed(1))
//	sol, _ := p.Run(ctx, mapgen.DefaultConfig())
//	data, _ := sol.RenderData(0)
//	fmt.Println(data.Summary())
package gridtesting
