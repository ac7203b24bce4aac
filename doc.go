/*
 * doc.go, part of orcabuild.
 *
 * Copyright 2024 Raul Mera <rmeraatusachdotcl>
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package orcabuild builds input files for the ORCA quantum chemistry program
from a small set of options: a job kind, method, basis set, charge, multiplicity,
solvent and a few on/off corrections, plus the molecular coordinates and any
custom blocks the user wants to add.

	**orcabuild Capabilities**

    Assembles the main "!" line, the %maxcore and %pal resource directives,
	the %cpcm solvation block and the "* xyz" coordinates block.

    Removes the header of XYZ files, so a file can be pasted as is.

    Reads XYZ and PDB coordinates, also gzip- and zstd-compressed (package xyz).

    Stores sets of options in YAML or HCL files (package preset).

    Keeps the state of an editing session, with an automatic and a
	manual preview mode (package session).

The assembly itself (Assemble) is a pure function. It does no I/O and keeps
no state, so it can be called as often as needed.
*/
package orcabuild
