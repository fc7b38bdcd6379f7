// Command fillshifts and its supporting packages assign workers to a
// venue's open shift positions for one week, using a min-cost max-flow
// solver to balance fairness against feasibility.
//
// roster and schedule hold the data model. weights, mcmf, and fairness
// implement the assignment engine; planner sequences the bar and general
// pools and applies the fairness gate. internal/config, internal/storage,
// internal/rotalog, and internal/metrics carry the ambient stack;
// cmd/fillshifts wires it all into one CLI invocation.
package rota
