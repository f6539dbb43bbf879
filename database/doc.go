// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

// Package database provides a simple keyed flat-file store. It is used by
// the regression package to keep its test entries between sessions.
//
// A session is started with StartSession() and must be closed with
// EndSession(), at which point any changes are committed to disk or
// forgotten, depending on the activity the session was opened with.
//
// Entries are stored one per line as comma separated fields. The first two
// fields are the entry key and the entry type ID; the remainder belong to
// the entry itself. Entry types must be registered before the session opens
// the file, which is why StartSession() takes an initialisation callback.
package database
