/*
Package geocoord implements the geodetic coordinate transformation engine that maps points
expressed in heterogeneous source coordinate systems into a local East-North-Up (ENU)
tangent-plane frame, and emits the ENU-to-ECEF rigid-body matrix used as a 3D-Tiles tileset
root transform.

The pipeline is source → WGS84 lon/lat/ellipsoidal-height → ECEF → local ENU. A
CoordinateSystem describes the source; a CoordinateTransformer is built from one (plus an
optional geographic reference and geoid configuration) and exposes the pure, synchronous
point-wise and batch transformations.

Geographic projection (EPSG/WKT → WGS84) and geoid-undulation lookup are external
collaborators, injected through the sibling projection and geoid packages rather than looked
up through process-global state.
*/
package geocoord
