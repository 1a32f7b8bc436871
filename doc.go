/*
 * doc.go, part of nomen.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package nomen turns the systematic name of a simple organic compound
("propan-2-ol", "propan-1,3-dioic acid") into a molecular graph, with atoms as
nodes and bonds as edges weighted by their order, and gives every atom, hydrogens
included, a 2D position ready to be drawn.




	**nomen Capabilities**


    Parses numeral words ("dodeca" is 12) and splits names into chain length,
	functional group, number of occurrences and positions.

    Builds the carbon chain and attaches the functional groups to it, never going
	over the valence of an atom. Groups that don't fit where the name puts them are
	moved towards the end of the chain.

    Lays the molecule out on a grid, adds the hydrogens, and fits the result into a
	drawing area keeping its shape.

    The valences, the functional groups and the numeral words are data. They can be
	extended or replaced from a YAML file.

    What to do with odd names (missing parts, groups that don't fit, disconnected
	graphs) is decided by a Policy: use a documented default, or fail.

    The graph can be seen as a gonum graph (package chemgraph), JSON encoded
	(package chemjson) and drawn (package chemplot).


Only open chains are supported. Substituent prefixes (anything before the last "yl")
are ignored, and "ene"/"yne" only change the order of the chain bonds at the
given positions.

The drawing coordinates are kept in a v2.Matrix, a Nx2 matrix based on gonum's Dense.*/
package nomen
